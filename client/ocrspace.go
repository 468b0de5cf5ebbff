package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultOCRSpaceURL is the public endpoint of the OCR.space parse API.
const DefaultOCRSpaceURL = "https://api.ocr.space/parse/image"

// OCRSpaceClient calls the OCR.space text-recognition API with a base64
// image payload and a fixed invocation configuration (English, orientation
// detection, scaling, engine 2).
type OCRSpaceClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewOCRSpaceClient creates an OCR.space client. An empty apiURL selects
// the public endpoint.
func NewOCRSpaceClient(apiURL, apiKey string) *OCRSpaceClient {
	if apiURL == "" {
		apiURL = DefaultOCRSpaceURL
	}
	return &OCRSpaceClient{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// ocrSpaceResponse is the subset of the API response the pipeline consumes.
type ocrSpaceResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool            `json:"IsErroredOnProcessing"`
	ErrorMessage          ocrErrorMessage `json:"ErrorMessage"`
}

// ocrErrorMessage tolerates both shapes the API uses: a plain string and a
// list of strings.
type ocrErrorMessage string

func (m *ocrErrorMessage) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = ocrErrorMessage(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = ocrErrorMessage(strings.Join(many, "; "))
	return nil
}

// Recognize sends the image and returns the first parsed text block.
func (c *OCRSpaceClient) Recognize(ctx context.Context, image []byte, filename string) (string, error) {
	form := url.Values{}
	form.Set("base64Image", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(image))
	form.Set("language", "eng")
	form.Set("isOverlayRequired", "false")
	form.Set("detectOrientation", "true")
	form.Set("scale", "true")
	form.Set("OCREngine", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building OCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling OCR service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("OCR service returned status %d", resp.StatusCode)
	}

	var result ocrSpaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding OCR response: %w", err)
	}

	if result.IsErroredOnProcessing {
		msg := string(result.ErrorMessage)
		if msg == "" {
			msg = "OCR processing failed"
		}
		return "", fmt.Errorf("OCR processing error: %s", msg)
	}

	if len(result.ParsedResults) == 0 {
		return "", fmt.Errorf("OCR service returned no parsed results")
	}

	return result.ParsedResults[0].ParsedText, nil
}
