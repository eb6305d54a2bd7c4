package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ekovalev/drillbot.git/internal/models"
)

// YandexDictAPI translates Russian words to English via the
// Yandex.Dictionary lookup endpoint. A word the dictionary does not know
// yields an empty translation, not an error.
type YandexDictAPI struct {
	baseURL string
	token   string
}

func NewYandexDictAPI(baseURL, token string) *YandexDictAPI {
	return &YandexDictAPI{
		baseURL: baseURL,
		token:   token,
	}
}

func (y *YandexDictAPI) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("key", y.token)
	params.Set("lang", "ru-en")
	params.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, "GET", y.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("yandex dictionary returned status %d", resp.StatusCode)
	}

	var data models.YandexLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode lookup response for %q: %w", text, err)
	}

	return data.FirstTranslation(), nil
}
