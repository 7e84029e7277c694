package easel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Serializer moves a value to and from a persistent representation.
type Serializer interface {
	// Serialize writes v to the underlying medium.
	Serialize(v any) error

	// Deserialize reads the stored representation into v.
	Deserialize(v any) error
}

// FileSerializer is a Serializer bound to a file path.
type FileSerializer interface {
	Serializer

	// Path returns the bound file path.
	Path() string
}

// JSONFileSerializer stores values as indented JSON files.
type JSONFileSerializer struct {
	path string
}

var _ FileSerializer = (*JSONFileSerializer)(nil)

// NewJSONFileSerializer creates a serializer bound to path.
func NewJSONFileSerializer(path string) *JSONFileSerializer {
	return &JSONFileSerializer{path: path}
}

// Path returns the bound file path.
func (s *JSONFileSerializer) Path() string { return s.path }

// Serialize writes v to the bound file as indented JSON.
func (s *JSONFileSerializer) Serialize(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("serialize %s: %w", s.path, err)
	}
	return nil
}

// Deserialize reads the bound file into v.
func (s *JSONFileSerializer) Deserialize(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("deserialize %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("deserialize %s: %w", s.path, err)
	}
	return nil
}

// URLResponse is the result of a URLLoader request.
type URLResponse struct {
	URL    string
	Status int
	Data   []byte
}

// URLLoader fetches remote assets.
type URLLoader interface {
	// Get fetches a URL into memory.
	Get(ctx context.Context, url string) (*URLResponse, error)

	// SaveTo fetches a URL into a local file.
	SaveTo(ctx context.Context, url, path string) (*URLResponse, error)
}

// HTTPLoader is a URLLoader on top of an http.Client.
type HTTPLoader struct {
	// Client defaults to http.DefaultClient when nil.
	Client *http.Client
}

var _ URLLoader = (*HTTPLoader)(nil)

func (l *HTTPLoader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	return http.DefaultClient
}

// Get fetches a URL into memory.
func (l *HTTPLoader) Get(ctx context.Context, url string) (*URLResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &URLResponse{URL: url, Status: resp.StatusCode, Data: data}, nil
}

// SaveTo fetches a URL into a local file. The response carries no body
// data; the payload goes straight to disk.
func (l *HTTPLoader) SaveTo(ctx context.Context, url, path string) (*URLResponse, error) {
	resp, err := l.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, resp.Data, 0o644); err != nil {
		return nil, err
	}
	resp.Data = nil
	return resp, nil
}
