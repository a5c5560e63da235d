package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

const hclFilename = "itemlist.hcl"

// HCLAdapter stores the sequence as a static HCL tuple expression such as
// ["a", { name = "b" }]. Expressions are evaluated without variables or
// functions.
type HCLAdapter struct {
	render RenderFunc
}

var _ Adapter = (*HCLAdapter)(nil)

// HCL constructs the HCL adapter. A nil render uses DefaultRender.
func HCL(render RenderFunc) *HCLAdapter {
	if render == nil {
		render = DefaultRender
	}
	return &HCLAdapter{render: render}
}

func (a *HCLAdapter) Parse(raw string) ([]any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	expr, diags := hclsyntax.ParseExpression([]byte(trimmed), hclFilename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("adapter: parse hcl: %s", diags.Error())
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("adapter: evaluate hcl: %s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return nil, fmt.Errorf("%w: hcl %s", ErrNotSequence, ty.FriendlyName())
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("adapter: hcl value is not fully known")
	}

	payload, err := ctyjson.Marshal(val, ty)
	if err != nil {
		return nil, fmt.Errorf("adapter: convert hcl value: %w", err)
	}

	var items []any
	dec := json.NewDecoder(strings.NewReader(string(payload)))
	dec.UseNumber()
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("adapter: convert hcl value: %w", err)
	}
	if items == nil {
		items = []any{}
	}
	return items, nil
}

func (a *HCLAdapter) Process(items []any) (string, error) {
	if items == nil {
		items = []any{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("adapter: encode hcl: %w", err)
	}
	ty, err := ctyjson.ImpliedType(payload)
	if err != nil {
		return "", fmt.Errorf("adapter: encode hcl: %w", err)
	}
	val, err := ctyjson.Unmarshal(payload, ty)
	if err != nil {
		return "", fmt.Errorf("adapter: encode hcl: %w", err)
	}
	return string(hclwrite.TokensForValue(val).Bytes()), nil
}

func (a *HCLAdapter) Render(item any) (string, error) {
	if a.render == nil {
		return DefaultRender(item)
	}
	return a.render(item)
}
