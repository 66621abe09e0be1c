package constant

// Prompts for the two-step shopping research pipeline.
// All of them demand JSON-only output; responses are still run through
// extraction and schema validation because models ignore that regularly.
const (
	QuestionGenerationPrompt = `You are a shopping assistant preparing a short clarifying survey.

User query: "%s"

Generate exactly 4 survey questions tailored to this query, covering:
1. primary use case
2. budget range
3. the most important spec or feature
4. a physical constraint (size, weight, noise, ...)

Each question carries exactly 4 short option labels.
Write questions and options in the same language as the user query.

JSON output only, no prose:
{"questions": [{"question_id": 1, "question": "...", "options": ["...", "...", "...", "..."]}, ...]}`

	IntentAnalysisPrompt = `Convert a shopper's query and survey answers into a structured search intent.

User query: "%s"
Survey answers:
%s

JSON output only, no prose:
{
  "category": "best matching product category label, e.g. laptop",
  "search_query": "one dense sentence describing the ideal product for a vector search",
  "keywords": ["important", "search", "terms"],
  "priorities": {"performance": 0, "portability": 0, "display": 0, "battery": 0, "price": 0},
  "min_price": null,
  "max_price": null,
  "user_needs": "one sentence summarizing what the shopper actually needs"
}

Priority scores are integers from 0 to 10. Prices are integers in the shopper's currency, or null when the answers give no bound.`

	BatchExplanationPrompt = `Write a recommendation reason and a short review summary for each product below.

User query: "%s"
User needs: %s

Products:
%s

JSON output only, keyed by product code:
{"<product_code>": {"recommendation_reason": "why this product fits the needs, max 2 sentences", "ai_review_summary": "expected ownership experience, max 2 sentences"}}

Write in the same language as the user query. Every listed product code must appear in the output.`

	RecommendationReasonPrompt = `User query: "%s"
User needs: %s
Product: %s by %s, price %d
Specs: %s

Explain in at most two sentences why this product fits the user. Plain text only, same language as the query.`

	ReviewSummaryPrompt = `Product: %s by %s, price %d
Specs: %s
User needs: %s

Summarize the expected ownership experience in at most two sentences. Plain text only, same language as the user needs.`
)
