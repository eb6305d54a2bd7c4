package models

// YandexLookupResponse is the subset of the Yandex.Dictionary lookup payload
// the bot reads: the first translation of the first definition.
type YandexLookupResponse struct {
	Def []struct {
		Text string `json:"text"`
		Pos  string `json:"pos"`
		Tr   []struct {
			Text string `json:"text"`
			Pos  string `json:"pos"`
		} `json:"tr"`
	} `json:"def"`
}

// FirstTranslation returns the top translation or "" when the dictionary
// has no entry for the word. An empty result is a normal miss.
func (r YandexLookupResponse) FirstTranslation() string {
	if len(r.Def) == 0 || len(r.Def[0].Tr) == 0 {
		return ""
	}
	return r.Def[0].Tr[0].Text
}
