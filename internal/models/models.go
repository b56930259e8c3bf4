package models

// Chunk represents a bounded text segment taken from one source document.
// Position is the chunk's ordinal within its source, Segment the page or
// sheet the text came from (1 when the format has no pages).
type Chunk struct {
	Text     string
	SourceID string
	Segment  int
	Position int
}

// Segment is one extracted unit of a document: a PDF page, a sheet, a
// slide, or the whole file for flat formats. Number is 1-based.
type Segment struct {
	Text   string
	Number int
}

// Document is one uploaded document after text extraction. SourceID is the
// display name used as the citation key for evidence from this document.
type Document struct {
	SourceID string
	Segments []Segment
}

// Origin identifies which retrieval path produced a piece of evidence.
type Origin string

const (
	OriginDocument Origin = "DOCUMENT"
	OriginWeb      Origin = "WEB"
)

// EvidenceItem is the normalized unit of retrieved evidence. Both document
// chunks and web snippets are converted to this form before assembly so the
// assembler can treat them uniformly.
type EvidenceItem struct {
	Content     string
	Origin      Origin
	CitationKey string
}

// Snippet is a single web search result.
type Snippet struct {
	Content string
	URL     string
}

// Classification is the three-way query routing label.
type Classification string

const (
	ClassDoc    Classification = "DOC"
	ClassWeb    Classification = "WEB"
	ClassHybrid Classification = "HYBRID"
)

// NeedsWeb reports whether the label asks for live web evidence.
func (c Classification) NeedsWeb() bool {
	return c == ClassWeb || c == ClassHybrid
}

// AssembledContext is the citation-annotated context blob fed to the model.
type AssembledContext struct {
	Text  string
	Items []EvidenceItem
}

// Empty reports whether no evidence survived assembly.
func (a AssembledContext) Empty() bool {
	return len(a.Items) == 0
}

// AnswerResult is the value returned for one query. It is constructed once
// per query and handed to the presentation layer; nothing in it is persisted.
type AnswerResult struct {
	Text           string         `json:"answer"`
	Classification Classification `json:"classification"`
	UsedDocuments  []string       `json:"used_documents"`
	UsedWeb        bool           `json:"used_web"`
	Evidence       []EvidenceItem `json:"-"`
}
