package skemap

import (
	"io"

	eng "github.com/reoring/skemap/internal/engine"
)

// DetectDuplicateKeys reports every duplicate object key in data, up to
// maxIssues (negative means no limit). Unlike DecodeJSON in Error mode it
// does not stop at the first duplicate.
func DetectDuplicateKeys(data []byte, maxIssues int) (Issues, error) {
	return detectDuplicates(eng.NewBytes(data), maxIssues)
}

// DetectDuplicateKeysReader is DetectDuplicateKeys over a stream.
func DetectDuplicateKeysReader(r io.Reader, maxIssues int) (Issues, error) {
	return detectDuplicates(eng.NewReader(r), maxIssues)
}

func detectDuplicates(src eng.TokenSource, maxIssues int) (Issues, error) {
	var iss Issues
	collect := func(is Issue) {
		if maxIssues < 0 || len(iss) < maxIssues {
			iss = AppendIssues(iss, is)
		}
	}
	opt := ParseOpt{Strictness: Strictness{OnDuplicateKey: Warn}}
	if _, err := decodeSource(src, opt, collect); err != nil {
		return nil, err
	}
	return iss, nil
}
