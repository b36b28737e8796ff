package entity

// FAQEntry is one question/answer pair. Questions are unique
// case-insensitively across the FAQ.
type FAQEntry struct {
	Question string `json:"pergunta"`
	Answer   string `json:"resposta"`
}
