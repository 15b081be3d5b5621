package corpus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_CSV(t *testing.T) {
	data := []byte("question,answer\n" +
		"xin chào,\"Chào bạn! Tôi là chatbot.\"\n" +
		"bạn là ai,Tôi là Flameo Chatbot.\n" +
		"thiếu câu trả lời,\n")

	rows, err := Parse(".csv", data, Columns{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Question: "xin chào", Answer: "Chào bạn! Tôi là chatbot."}, rows[0])
	assert.False(t, rows[2].Valid())
}

func TestParse_CSVHeaderMatchingIgnoresCaseAccentsAndBOM(t *testing.T) {
	data := []byte("\ufeffSTT,Câu hỏi , Câu trả lời\n1,Giờ mở cửa?,8h sáng\n")

	rows, err := Parse(".csv", data, Columns{Question: "cau hoi", Answer: "CAU TRA LOI"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Giờ mở cửa?", rows[0].Question)
	assert.Equal(t, "8h sáng", rows[0].Answer)
}

func TestParse_CSVMissingColumn(t *testing.T) {
	_, err := Parse(".csv", []byte("question,reply\na,b\n"), Columns{})
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = Parse(".csv", []byte(""), Columns{})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParse_CSVShortRowsAreMissingValues(t *testing.T) {
	rows, err := Parse(".csv", []byte("question,answer\nonly question\n"), Columns{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Answer)
}

func TestParse_TSV(t *testing.T) {
	rows, err := Parse(".TSV", []byte("answer\tquestion\nfine\thow are you\n"), Columns{})
	require.NoError(t, err)
	assert.Equal(t, []Row{{Question: "how are you", Answer: "fine"}}, rows)
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"question", "answer"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"xin chào", "Chào bạn!"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"bạn là ai", "Flameo"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := Parse(".xlsx", buf.Bytes(), Columns{})
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Question: "xin chào", Answer: "Chào bạn!"},
		{Question: "bạn là ai", Answer: "Flameo"},
	}, rows)
}

func TestParse_XLSInvalidData(t *testing.T) {
	_, err := Parse(".xls", []byte("not a workbook"), Columns{})
	assert.Error(t, err)
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
- question: xin chào
  answer: Chào bạn!
- question: bạn là ai
  answer: ~
- question: năm thành lập
  answer: 2020
`)
	rows, err := Parse(".yml", data, Columns{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Chào bạn!", rows[0].Answer)
	assert.False(t, rows[1].Valid())
	assert.Equal(t, "2020", rows[2].Answer)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`[{"Question": "xin chào", "Answer": "Chào bạn!"}]`)

	rows, err := Parse(".json", data, Columns{})
	require.NoError(t, err)
	assert.Equal(t, []Row{{Question: "xin chào", Answer: "Chào bạn!"}}, rows)

	_, err = Parse(".json", []byte(`[{"q": "x", "a": "y"}]`), Columns{})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParse_DocumentDuplicateKeysResolveDeterministically(t *testing.T) {
	data := []byte(`[{"Question": "upper", "question": "lower", " QUESTION": "spaced", "answer": "a"}]`)

	for i := 0; i < 20; i++ {
		rows, err := Parse(".json", data, Columns{})
		require.NoError(t, err)
		assert.Equal(t, "lower", rows[0].Question, "exact spelling of the column wins")
	}

	yml := []byte("- Question: upper\n  QUESTION: shout\n  answer: a\n")
	for i := 0; i < 20; i++ {
		rows, err := Parse(".yaml", yml, Columns{})
		require.NoError(t, err)
		assert.Equal(t, "shout", rows[0].Question, "lexically first folded key wins")
	}
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse(".parquet", nil, Columns{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
