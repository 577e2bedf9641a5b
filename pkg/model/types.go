package model

// Document is one loaded PDF: its pages in order plus document-level info.
// It is built once by the loader and never modified afterwards.
type Document struct {
	Path     string   `json:"path"`
	Metadata Metadata `json:"metadata"`
	Pages    []Page   `json:"pages"`
}

// Metadata holds document-level information.
type Metadata struct {
	Title    string `json:"title,omitempty"`
	Author   string `json:"author,omitempty"`
	Creator  string `json:"creator,omitempty"`
	Producer string `json:"producer,omitempty"`
	// Encrypted indicates if the file was password protected
	Encrypted bool `json:"encrypted"`
}

// Page represents a single page in the PDF.
type Page struct {
	Index      int      `json:"index"` // 0-based
	Text       string   `json:"text"`  // plain text, original line breaks kept
	ImageCount int      `json:"image_count"`
	Links      []string `json:"links,omitempty"` // hyperlink URIs in annotation order
}

// Texts returns the page texts in page order.
func (d *Document) Texts() []string {
	texts := make([]string, len(d.Pages))
	for i, p := range d.Pages {
		texts[i] = p.Text
	}
	return texts
}

// Result is the analysis record for one document.
type Result struct {
	File               string   `json:"file"`
	Title              string   `json:"title,omitempty"`
	MetadataTitle      string   `json:"metadata_title,omitempty"`
	WordCount          int      `json:"word_count"`
	FigureCount        int      `json:"figure_count"`
	FigureNumbers      []string `json:"figures"`
	EmbeddedImageCount int      `json:"embedded_image_count"`
	ReferenceCount     int      `json:"reference_count"`
	DOIs               []string `json:"dois"` // normalized, sorted; len == ReferenceCount
	GitHubLinks        []string `json:"github_links"`
}
