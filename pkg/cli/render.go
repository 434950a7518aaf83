package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/faunalog/faunalog/pkg/clientlog"
)

var (
	renderMethod string
	renderPath   string
	renderStatus int
	renderLimit  int
	renderSelect string
	renderYAML   bool
	renderStrict bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render captured exchanges as debug log blocks",
	Long: `Render reads recorded request/response exchanges and prints each one as
the multi-line debug block the client's logging observer produces.

Input is NDJSON by default: one exchange object per line, with fields
method, path, query, requestContent, responseHeaders, responseContent,
statusCode and timeTaken (milliseconds). With --yaml (or a .yaml/.yml
file) the input is a YAML list of the same objects. "-" or no argument
reads stdin.`,
	Example: `  # Render a capture file
  faunalog render exchanges.ndjson

  # Only POST exchanges under classes/, at most five
  faunalog render -m POST -p classes/ -n 5 exchanges.ndjson

  # Show just the resource ref of each response
  faunalog render --select '$.resource.ref' exchanges.ndjson

  # Render from stdin
  cat exchanges.ndjson | faunalog render`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderMethod, "method", "m", "", "Filter by HTTP method")
	renderCmd.Flags().StringVarP(&renderPath, "path", "p", "", "Filter by path prefix")
	renderCmd.Flags().IntVar(&renderStatus, "status", 0, "Filter by response status code")
	renderCmd.Flags().IntVarP(&renderLimit, "limit", "n", 0, "Maximum number of exchanges to render (0 = all)")
	renderCmd.Flags().StringVar(&renderSelect, "select", "", "JSONPath projecting the response content before rendering")
	renderCmd.Flags().BoolVar(&renderYAML, "yaml", false, "Treat input as a YAML list of exchanges")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Fail on the first malformed record instead of skipping it")
	rootCmd.AddCommand(renderCmd)
}

// record is the wire shape of one captured exchange. timeTaken is in
// milliseconds, matching what client instrumentation emits.
type record struct {
	Method          string            `json:"method" yaml:"method"`
	Path            string            `json:"path" yaml:"path"`
	Query           map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	RequestContent  any               `json:"requestContent,omitempty" yaml:"requestContent,omitempty"`
	ResponseHeaders map[string]string `json:"responseHeaders,omitempty" yaml:"responseHeaders,omitempty"`
	ResponseContent any               `json:"responseContent,omitempty" yaml:"responseContent,omitempty"`
	StatusCode      int               `json:"statusCode" yaml:"statusCode"`
	TimeTaken       float64           `json:"timeTaken" yaml:"timeTaken"`
}

func (r *record) requestResult() *clientlog.RequestResult {
	return &clientlog.RequestResult{
		Method:          r.Method,
		Path:            r.Path,
		Query:           r.Query,
		RequestContent:  r.RequestContent,
		ResponseHeaders: r.ResponseHeaders,
		ResponseContent: r.ResponseContent,
		StatusCode:      r.StatusCode,
		TimeTaken:       time.Duration(r.TimeTaken * float64(time.Millisecond)),
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	name := "-"
	if len(args) == 1 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open records file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var selectExpr jp.Expr
	if renderSelect != "" {
		expr, err := jp.ParseString(renderSelect)
		if err != nil {
			return fmt.Errorf("parse --select expression: %w", err)
		}
		selectExpr = expr
	}

	var (
		records []*record
		err     error
	)
	if renderYAML || hasYAMLExt(name) {
		records, err = decodeYAMLRecords(in)
	} else {
		records, err = decodeNDJSONRecords(in, renderStrict, logger)
	}
	if err != nil {
		return err
	}

	obs := clientlog.NewObserver(clientlog.WriterSink(cmd.OutOrStdout()))

	rendered := 0
	for _, rec := range records {
		if !matchesRenderFilter(rec) {
			continue
		}
		if renderLimit > 0 && rendered >= renderLimit {
			break
		}
		rr := rec.requestResult()
		if selectExpr != nil {
			rr.ResponseContent = applySelect(selectExpr, rr.ResponseContent)
		}
		if err := obs(rr); err != nil {
			return fmt.Errorf("render exchange: %w", err)
		}
		rendered++
	}

	if rendered == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No exchanges to render")
	}
	return nil
}

// decodeNDJSONRecords reads one JSON record per line. Malformed lines are
// skipped with a warning unless strict is set.
func decodeNDJSONRecords(in io.Reader, strict bool, logger *slog.Logger) ([]*record, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var records []*record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec := &record{}
		if err := json.Unmarshal([]byte(line), rec); err != nil {
			if strict {
				return nil, fmt.Errorf("decode record on line %d: %w", lineNo, err)
			}
			logger.Warn("skipping malformed record", "line", lineNo, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return records, nil
}

// decodeYAMLRecords reads a YAML list of records. YAML is a whole-document
// format, so malformed input is always fatal regardless of --strict.
func decodeYAMLRecords(in io.Reader) ([]*record, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var records []*record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode yaml records: %w", err)
	}
	return records, nil
}

func hasYAMLExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func matchesRenderFilter(rec *record) bool {
	if renderMethod != "" && !strings.EqualFold(rec.Method, renderMethod) {
		return false
	}
	if renderPath != "" && !strings.HasPrefix(rec.Path, renderPath) {
		return false
	}
	if renderStatus != 0 && rec.StatusCode != renderStatus {
		return false
	}
	return true
}

// applySelect projects content through the JSONPath expression. A single
// match replaces the content, several matches render as a list, none
// renders null.
func applySelect(expr jp.Expr, content any) any {
	results := expr.Get(content)
	switch len(results) {
	case 0:
		return nil
	case 1:
		return results[0]
	default:
		return []any(results)
	}
}
