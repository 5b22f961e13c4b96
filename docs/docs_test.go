package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var routerAnnotation = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

func TestSwaggerCoversAnnotatedRoutes(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}

	files, err := filepath.Glob("../internal/adapter/http/handlers/*_handler.go")
	if err != nil || len(files) == 0 {
		t.Fatalf("no handlers found: %v", err)
	}
	annotated := 0
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		for _, m := range routerAnnotation.FindAllStringSubmatch(string(src), -1) {
			annotated++
			path, method := m[1], strings.ToLower(m[2])
			if _, ok := doc.Paths[path][method]; !ok {
				t.Errorf("%s %s is annotated in %s but missing from the document", method, path, filepath.Base(f))
			}
		}
	}
	if annotated == 0 {
		t.Fatalf("expected @Router annotations")
	}
}
