package constants

// ExtractionMethod records which AI path produced the underlying extraction.
// Informational only; the merge logic never branches on it.
type ExtractionMethod string

const (
	MethodMultimodal ExtractionMethod = "multimodal" // image + text sent to the model
	MethodTextOnly   ExtractionMethod = "text-only"  // text-only model call
	MethodDemo       ExtractionMethod = "demo"       // model unavailable or timed out; regex-only result
)

// Metadata keys carried on every canonical record.
const (
	KeyDocumentType     = "document_type"
	KeyExtractionMethod = "extraction_method"
	KeySummary          = "summary"
)
