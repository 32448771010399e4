package domain

// WriteResult describes one persisted output file.
type WriteResult struct {
	Path       string
	Bytes      int
	BackupPath string
}

type LanguageReport struct {
	Language            Language
	ProfileQuestions    int
	AssessmentQuestions int
	FocusAreas          int
	Output              WriteResult
}

// RunReport summarizes a completed conversion run.
type RunReport struct {
	RunID        string
	Languages    []LanguageReport
	WorkbookPath string
}
