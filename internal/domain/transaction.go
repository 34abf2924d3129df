package domain

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionConfirmed TransactionStatus = "confirmed"
	TransactionFailed    TransactionStatus = "failed"
)

type TransactionRecord struct {
	Signature string
	From      string
	To        string
	Amount    float64
	Token     string
	Status    TransactionStatus
}
