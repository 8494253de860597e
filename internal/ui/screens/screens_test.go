package screens

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFinancialSummary(t *testing.T) {
	t.Run("Net amount is cod minus shipping fee", func(t *testing.T) {
		var buf bytes.Buffer
		RenderFinancialSummary(&buf, 200000, 30000)

		out := buf.String()
		assert.Contains(t, out, "Tiền COD (Thu khách): 200,000 đ")
		assert.Contains(t, out, "Phí vận chuyển: - 30,000 đ")
		assert.Contains(t, out, "Shipper thu khách: 200,000 đ")
		assert.Contains(t, out, "Shop thực nhận: 170,000 đ")
	})

	t.Run("Zero fee passes the full cod through", func(t *testing.T) {
		var buf bytes.Buffer
		RenderFinancialSummary(&buf, 99000, 0)

		assert.Contains(t, buf.String(), "Shop thực nhận: 99,000 đ")
	})
}

func TestPromptFloat(t *testing.T) {
	t.Run("Accepts comma-grouped input", func(t *testing.T) {
		in := bufio.NewReader(strings.NewReader("200,000\n"))
		var buf bytes.Buffer

		got := promptFloat(in, &buf, "Tiền COD")
		assert.Equal(t, 200000.0, got)
	})

	t.Run("Retries on garbage until a number arrives", func(t *testing.T) {
		in := bufio.NewReader(strings.NewReader("abc\n30000\n"))
		var buf bytes.Buffer

		got := promptFloat(in, &buf, "Phí vận chuyển")
		assert.Equal(t, 30000.0, got)
		assert.Contains(t, buf.String(), "không hợp lệ")
	})
}

func TestPrompt(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  Nguyễn Văn A  \n"))
	var buf bytes.Buffer

	got := prompt(in, &buf, "Tên người nhận")
	require.Equal(t, "Nguyễn Văn A", got)
	assert.Contains(t, buf.String(), "Tên người nhận")
}
