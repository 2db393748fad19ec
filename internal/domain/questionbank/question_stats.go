package questionbank

// BankStats aggregates statistics for a question bank.
type BankStats struct {
	TotalQuestions int
}

// Stats returns the bank's aggregate statistics.
func (b *Bank) Stats() BankStats {
	return BankStats{TotalQuestions: len(b.questions)}
}
