package agent

const systemPrompt = "You are a friendly customer support assistant for an online store. " +
	"Answer briefly and helpfully, and never invent product or order details."

// classifyPrompt expects the latest user message as its single argument. The
// model must answer with one bare label so the reply can be matched exactly.
const classifyPrompt = "Classify the user message into exactly one of these labels: product, order, smalltalk.\n" +
	"Respond with the label only, lowercase, no punctuation, no extra words.\n\n" +
	"Message: %s"

const clarifyContext = "Let me help with that. Can you share more details?"
