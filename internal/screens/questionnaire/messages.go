package questionnaire

// recordSavedMsg reports the outcome of appending the finished record.
type recordSavedMsg struct {
	Err error
}
