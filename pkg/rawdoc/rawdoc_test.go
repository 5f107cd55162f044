package rawdoc_test

import (
	"testing"
	"time"

	"traveldesk-admin/pkg/rawdoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	doc := rawdoc.Doc{
		"name": "Goa Trip",
		"package": map[string]interface{}{
			"name": "Alps Hike",
		},
		"nested": bson.M{
			"deep": bson.M{"value": 42},
		},
		"empty": nil,
	}

	t.Run("plain key", func(t *testing.T) {
		v, ok := doc.Lookup("name")
		require.True(t, ok)
		assert.Equal(t, "Goa Trip", v)
	})

	t.Run("dotted path", func(t *testing.T) {
		v, ok := doc.Lookup("package.name")
		require.True(t, ok)
		assert.Equal(t, "Alps Hike", v)
	})

	t.Run("dotted path through bson.M", func(t *testing.T) {
		v, ok := doc.Lookup("nested.deep.value")
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("missing and nil keys", func(t *testing.T) {
		_, ok := doc.Lookup("absent")
		assert.False(t, ok)
		_, ok = doc.Lookup("empty")
		assert.False(t, ok)
		_, ok = doc.Lookup("name.sub")
		assert.False(t, ok)
	})

	t.Run("first takes priority order", func(t *testing.T) {
		v, ok := doc.First("absent", "package.name", "name")
		require.True(t, ok)
		assert.Equal(t, "Alps Hike", v)
	})
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	// The two stored shapes must normalize identically
	assert.Equal(t, "paid", rawdoc.StatusText("paid", "pending"))
	assert.Equal(t, "paid", rawdoc.StatusText(map[string]interface{}{"status": "paid"}, "pending"))
	assert.Equal(t, "paid", rawdoc.StatusText(bson.M{"status": "paid"}, "pending"))

	assert.Equal(t, "pending", rawdoc.StatusText(nil, "pending"))
	assert.Equal(t, "pending", rawdoc.StatusText("", "pending"))
	assert.Equal(t, "pending", rawdoc.StatusText(map[string]interface{}{"other": 1}, "pending"))
	assert.Equal(t, "pending", rawdoc.StatusText(12345, "pending"))
}

func TestDecodeTime(t *testing.T) {
	t.Parallel()

	t.Run("iso string passes through", func(t *testing.T) {
		tv := rawdoc.DecodeTime("2024-05-01T10:30:00Z")
		assert.Equal(t, rawdoc.TimeISO, tv.Kind)
		assert.Equal(t, "2024-05-01T10:30:00Z", tv.ISO())
		assert.Equal(t, "2024-05-01", tv.DateOnly())
	})

	t.Run("date-only string", func(t *testing.T) {
		tv := rawdoc.DecodeTime("2024-05-01")
		assert.Equal(t, rawdoc.TimeISO, tv.Kind)
		assert.Equal(t, "2024-05-01", tv.DateOnly())
	})

	t.Run("native time", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		tv := rawdoc.DecodeTime(ts)
		assert.Equal(t, rawdoc.TimeNative, tv.Kind)
		assert.Equal(t, "2024-05-01T10:30:00Z", tv.ISO())
	})

	t.Run("bson datetime", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		tv := rawdoc.DecodeTime(primitive.NewDateTimeFromTime(ts))
		assert.Equal(t, rawdoc.TimeNative, tv.Kind)
		assert.Equal(t, "2024-05-01", tv.DateOnly())
	})

	t.Run("epoch millis", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
		tv := rawdoc.DecodeTime(ts.UnixMilli())
		assert.Equal(t, rawdoc.TimeEpoch, tv.Kind)
		assert.Equal(t, "2024-05-01", tv.DateOnly())
	})

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, rawdoc.TimeMissing, rawdoc.DecodeTime(nil).Kind)
		assert.Equal(t, rawdoc.TimeMissing, rawdoc.DecodeTime("").Kind)
		assert.Equal(t, "", rawdoc.DecodeTime(nil).ISO())
	})
}

func TestSchemaNormalize(t *testing.T) {
	t.Parallel()

	schema := rawdoc.Schema{
		{Name: "name", Kind: rawdoc.KindText, Default: "Unknown",
			Keys: []string{"packageName", "package.name", "title"}},
		{Name: "days", Kind: rawdoc.KindInt, Default: 1,
			Keys: []string{"packageDays", "days"}},
		{Name: "price", Kind: rawdoc.KindFloat,
			Keys: []string{"totalAmount", "price"}},
		{Name: "payment", Kind: rawdoc.KindStatus, Default: "pending",
			Keys: []string{"paymentStatus"}},
		{Name: "start", Kind: rawdoc.KindTime,
			Keys: []string{"startDate", "date"}},
	}

	t.Run("empty document yields every default", func(t *testing.T) {
		f := schema.Normalize(rawdoc.Doc{})
		assert.Equal(t, "Unknown", f.Text("name"))
		assert.Equal(t, 1, f.Int("days"))
		assert.Equal(t, float64(0), f.Float("price"))
		assert.Equal(t, "pending", f.Text("payment"))
		assert.Equal(t, "", f.Text("start"))
		for name, v := range f {
			assert.NotNil(t, v, "field %s must never be nil", name)
		}
	})

	t.Run("fallback chain picks the first populated key", func(t *testing.T) {
		f := schema.Normalize(rawdoc.Doc{
			"packageName": "",
			"package":     map[string]interface{}{"name": "Goa Trip"},
			"title":       "Ignored",
			"days":        "4",
			"price":       1250.5,
		})
		assert.Equal(t, "Goa Trip", f.Text("name"))
		assert.Equal(t, 4, f.Int("days"))
		assert.Equal(t, 1250.5, f.Float("price"))
	})

	t.Run("payment status shapes normalize identically", func(t *testing.T) {
		plain := schema.Normalize(rawdoc.Doc{"paymentStatus": "paid"})
		nested := schema.Normalize(rawdoc.Doc{"paymentStatus": map[string]interface{}{"status": "paid"}})
		assert.Equal(t, "paid", plain.Text("payment"))
		assert.Equal(t, plain.Text("payment"), nested.Text("payment"))
	})

	t.Run("unusable shapes fall through to defaults", func(t *testing.T) {
		f := schema.Normalize(rawdoc.Doc{
			"packageName": 77,
			"days":        "not-a-number",
			"startDate":   []string{"bad"},
		})
		assert.Equal(t, "77", f.Text("name"))
		assert.Equal(t, 1, f.Int("days"))
		assert.Equal(t, "", f.Text("start"))
	})
}
