package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/alaskavn/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSpecifications(t *testing.T) {
	t.Parallel()

	t.Run("extracts labeled key-value pairs", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<p>Dung tích: 535 lít</p>
			<p>Điện áp: 220V/50Hz</p>
			<p>Xuất xứ: Việt Nam</p>
		</div>`)

		specs := goquery.ExtractSpecifications(doc)
		assert.Equal(t, "535 lít", specs["Dung tích"])
		assert.Equal(t, "220V/50Hz", specs["Điện áp"])
		assert.Equal(t, "Việt Nam", specs["Xuất xứ"])
	})

	t.Run("infers keys from unlabeled value shapes", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<p>600x500x800 mm</p>
			<p>45 kg</p>
			<p>R134A</p>
			<p>150W</p>
		</div>`)

		specs := goquery.ExtractSpecifications(doc)
		assert.Equal(t, "600x500x800 mm", specs["Dimensions"])
		assert.Equal(t, "45 kg", specs["Weight"])
		assert.Equal(t, "R134A", specs["Refrigerant"])
		assert.Equal(t, "150W", specs["Power"])
	})

	t.Run("merges table rows last so they override regex matches", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<p>Dung tích: 500 lít</p>
			<table>
				<tr><td>Dung tích</td><td>535 lít</td></tr>
				<tr><td>Gas</td><td>R600a</td></tr>
			</table>
		</div>`)

		specs := goquery.ExtractSpecifications(doc)
		assert.Equal(t, "535 lít", specs["Dung tích"])
		assert.Equal(t, "R600a", specs["Gas"])
	})

	t.Run("never stores values carrying price tokens", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<div>
			<p>Công suất: MIỀN BẮC 12,345,000</p>
			<p>Bảo hành: 2 năm 1,000 VNĐ</p>
			<table><tr><td>MIỀN NAM</td><td>giá tốt</td></tr></table>
		</div>`)

		specs := goquery.ExtractSpecifications(doc)
		for key, value := range specs {
			assert.NotContains(t, strings.ToUpper(value), "VNĐ", "key %s", key)
			assert.NotContains(t, strings.ToUpper(value), "MIỀN", "key %s", key)
			assert.NotContains(t, strings.ToUpper(key), "MIỀN")
		}
		assert.NotContains(t, specs, "Công suất")
		assert.NotContains(t, specs, "Bảo hành")
	})

	t.Run("rejects overlong values", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("a", 120)
		doc := parseDoc(t, "<p>Trọng lượng: "+long+"</p>")
		specs := goquery.ExtractSpecifications(doc)
		assert.NotContains(t, specs, "Trọng lượng")
	})

	t.Run("returns empty mapping for a page with no specs", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<p>Một trang trống.</p>")
		specs := goquery.ExtractSpecifications(doc)
		require.Empty(t, specs)
	})
}
