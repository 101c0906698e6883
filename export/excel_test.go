package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/agencydesk/premium-extract/dto"
)

func TestBuildXLSX(t *testing.T) {
	workbook, err := BuildXLSX([]dto.DivisionSummary{sampleSummary()})

	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	header, err := f.GetCellValue(sheetName, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Company", header)

	division, _ := f.GetCellValue(sheetName, "A2")
	assert.Equal(t, "Insurance Division 4", division)

	newPolicies, _ := f.GetCellValue(sheetName, "B2")
	assert.Equal(t, "21149.00", newPolicies)

	rewrites, _ := f.GetCellValue(sheetName, "C2")
	assert.Equal(t, ".00", rewrites)

	returnPremium, _ := f.GetCellValue(sheetName, "E2")
	assert.Equal(t, "-500.00", returnPremium)
}

func TestWriteXLSXFileCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/output/test.xlsx"

	err := WriteXLSXFile([]dto.DivisionSummary{sampleSummary()}, path)

	assert.NoError(t, err)
	assert.FileExists(t, path)
}
