package email

const (
	subjectQuoteRequestFmt = "New Quote Request from %s - %s"
)
