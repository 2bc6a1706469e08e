package util

import (
	"finledger-server/src/models"
)

func ValidateTitle(title string) bool {
	return title != ""
}

func ValidateTransactionType(transactionType string) bool {
	return transactionType == models.TypeCredit || transactionType == models.TypeDebit
}
