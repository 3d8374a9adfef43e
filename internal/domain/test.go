package domain

// TestCase is a test definition found inside a test file
type TestCase struct {
	Adapter  string // Adapter whose markers found it
	FilePath string
	Line     int
	Text     string // Raw definition line
}
