package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHasAllKinds(t *testing.T) {
	registry, err := NewRegistry(nil)
	require.NoError(t, err)

	for _, kind := range Kinds() {
		tmpl, ok := registry.Get(kind)
		assert.True(t, ok, "missing template for %s", kind)
		assert.Equal(t, kind, tmpl.Kind)
	}
}

func TestRegistryUnknownKind(t *testing.T) {
	registry, err := NewRegistry(nil)
	require.NoError(t, err)

	_, ok := registry.Get(Kind("invoice"))
	assert.False(t, ok)
}

func TestRegistryRoundTrip(t *testing.T) {
	override := "Summarize this balance sheet:\n{data}\nBe brief."
	registry, err := NewRegistry(map[Kind]string{KindBalanceSheet: override})
	require.NoError(t, err)

	tmpl, ok := registry.Get(KindBalanceSheet)
	require.True(t, ok)
	assert.Equal(t, Template{Kind: KindBalanceSheet, Prompt: override}, tmpl)

	// Resolving again yields the same value.
	again, ok := registry.Get(KindBalanceSheet)
	require.True(t, ok)
	assert.Equal(t, tmpl, again)
}

func TestRegistryRejectsMissingPlaceholder(t *testing.T) {
	_, err := NewRegistry(map[Kind]string{KindCashFlow: "summarize the cash flow statement"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestRegistryRejectsDuplicatePlaceholder(t *testing.T) {
	_, err := NewRegistry(map[Kind]string{KindProfitLoss: "{data} and again {data}"})
	require.Error(t, err)
}

func TestTemplateRenderVerbatim(t *testing.T) {
	tmpl := Template{Kind: KindProfitLoss, Prompt: "Data:\n{data}\nEnd."}

	// %s, %d and braces in the data must survive untouched.
	data := "Revenue 100%s of plan, %d units, {data}"
	got := tmpl.Render(data)
	assert.Equal(t, "Data:\nRevenue 100%s of plan, %d units, {data}\nEnd.", got)
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(string(kind))
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseKind("unknown_kind")
	assert.Error(t, err)

	_, err = ParseKind("")
	assert.Error(t, err)
}
