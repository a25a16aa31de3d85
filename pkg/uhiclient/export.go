package uhiclient

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"
)

// ExportDocument is the serialized shape of an exported analysis
type ExportDocument struct {
	GeneratedAt int64       `json:"generated_at"`
	Params      Params      `json:"params"`
	Data        []Point     `json:"data"`
	Statistics  *Statistics `json:"statistics"`
}

// Export writes an already-fetched result as indented JSON
func Export(w io.Writer, params Params, result *AnalyzeResult) error {
	doc := ExportDocument{
		GeneratedAt: time.Now().Unix(),
		Params:      params,
		Data:        result.Data,
		Statistics:  result.Statistics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportToFile fetches an analysis and writes it to the given path
func (c *Client) ExportToFile(ctx context.Context, params Params, path string) error {
	result, err := c.Analyze(ctx, params)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Export(f, params, result)
}
