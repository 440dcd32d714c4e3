package responses

// ExportDocument carries an in-memory export plus the metadata the
// controller needs to stream it or hand it to the archive bucket.
type ExportDocument struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"-"`
}

type ExportArchived struct {
	FileName  string `json:"fileName"`
	Bucket    string `json:"bucket"`
	ObjectURL string `json:"objectUrl,omitempty"`
}
