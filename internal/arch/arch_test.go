// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

// Core packages stay free of I/O and CLI layers; adapters never reach back
// into the app.
var bans = map[string][]string{
	"agc/internal/derep": {
		"agc/internal/align", "agc/internal/otu", "agc/internal/fasta",
		"agc/internal/output", "agc/internal/pipeline", "agc/internal/config",
		"agc/internal/cli", "agc/internal/app", "agc/cmd/",
	},
	"agc/internal/align": {
		"agc/internal/derep", "agc/internal/otu", "agc/internal/fasta",
		"agc/internal/output", "agc/internal/pipeline", "agc/internal/config",
		"agc/internal/cli", "agc/internal/app", "agc/cmd/",
	},
	"agc/internal/otu": {
		"agc/internal/fasta", "agc/internal/output", "agc/internal/pipeline",
		"agc/internal/config", "agc/internal/cli", "agc/internal/app", "agc/cmd/",
	},
	"agc/internal/pipeline": {
		"agc/internal/output", "agc/internal/config", "agc/internal/cli",
		"agc/internal/app", "agc/cmd/",
	},
	"agc/internal/output": {
		"agc/internal/pipeline", "agc/internal/cli", "agc/internal/app", "agc/cmd/",
	},
	"agc/internal/config": {
		"agc/internal/cli", "agc/internal/app", "agc/cmd/",
	},
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "agc/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Skipf("go list unavailable: %v", err)
	}
	dec := json.NewDecoder(&out)

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			for _, ban := range forbidden {
				if strings.HasPrefix(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
