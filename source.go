package skemap

import (
	"errors"
	"fmt"
	"io"

	eng "github.com/reoring/skemap/internal/engine"
)

// DecodeJSON builds the generic value tree (map[string]any, []any, string,
// json.Number or float64, bool, nil) from a JSON document, applying the
// duplicate key, depth and size limits of opt. Duplicate keys in warn mode
// are passed to warn when it is non-nil.
func DecodeJSON(data []byte, opt ParseOpt, warn func(Issue)) (any, error) {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, singleIssue(CodeTruncated, "max bytes exceeded")
	}
	return decodeSource(eng.NewBytes(data), opt, warn)
}

// DecodeJSONReader is DecodeJSON over a stream. When MaxBytes is set the
// input is read up to the limit first.
func DecodeJSONReader(r io.Reader, opt ParseOpt, warn func(Issue)) (any, error) {
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		return DecodeJSON(data, opt, warn)
	}
	return decodeSource(eng.NewReader(r), opt, warn)
}

func decodeSource(src eng.TokenSource, opt ParseOpt, warn func(Issue)) (any, error) {
	var sink func(eng.SimpleIssue)
	if warn != nil {
		sink = func(si eng.SimpleIssue) { warn(Issue{Path: si.Path, Code: si.Code, Message: si.Message}) }
	}
	enforced := eng.WrapWithEnforcement(src, eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		IssueSink:   sink,
	})
	conv := eng.AsJSONNumber
	if opt.NumberMode == NumberFloat64 {
		conv = eng.AsFloat64
	}
	v, err := eng.DecodeAny(enforced, conv)
	if err != nil {
		return nil, intakeIssues(err)
	}
	return v, nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func intakeIssues(err error) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	return AppendIssues(nil, Issue{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("invalid JSON: %v", err), Cause: err})
}

func singleIssue(code, msg string) Issues {
	return AppendIssues(nil, Issue{Path: "/", Code: code, Message: msg})
}
