package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/swaggo/swag"
)

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}

	if _, ok := doc.Paths["/api/v1/dashboard/uploads"]["post"]; !ok {
		t.Errorf("upload route missing")
	}

	// Every $ref must point at a definition.
	for _, part := range strings.Split(raw, `"$ref": "#/definitions/`)[1:] {
		name := part[:strings.Index(part, `"`)]
		if _, ok := doc.Definitions[name]; !ok {
			t.Errorf("unresolved reference %q", name)
		}
	}
	for _, name := range []string{"http.loadResp", "http.overviewResp", "http.importReq", "response.Resp"} {
		if _, ok := doc.Definitions[name]; !ok {
			t.Errorf("definition %q missing", name)
		}
	}
}
