package models

var (
	// RouterPromptTemplate asks the model for a single category token.
	// %s is the user query.
	RouterPromptTemplate = `Classify this query into one of three categories: 'DOC', 'WEB', or 'HYBRID'.
DOC: Internal knowledge, technical specs from documents.
WEB: Real-time news, current events, recent stats.
HYBRID: Comparing internal info with external trends.
Query: %s
Category:`

	// AnswerPromptTemplate instructs the model to answer strictly from the
	// supplied context and to tag every claim with its evidence origin.
	// First %s is the assembled context, second %s is the query.
	AnswerPromptTemplate = `You are a helpful AI Assistant. Answer the question based only on the provided context.
If the information comes from a document, cite it as [Doc: filename].
If it comes from the web, cite it as [Web: URL].
If the context contains no grounding for the question, say so instead of guessing.

Context: %s
Question: %s
Answer:`
)
