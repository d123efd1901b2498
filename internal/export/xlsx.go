// Package export renders facility records into an xlsx workbook, one sheet
// per table.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/facscrub/internal/ports/primary"
)

var taskHeaders = []string{
	"Task ID", "Location ID", "Date", "Time", "Cleaner ID",
	"Task Type", "Status", "Duration (mins)", "Notes",
}

var inspectionHeaders = []string{
	"Inspection ID", "Location ID", "Date", "Hygiene Score", "Auditor ID",
	"Issues Found", "Corrective Actions", "Feedback",
}

var consumableHeaders = []string{
	"Usage ID", "Date", "Location ID", "Resource Type",
	"Quantity Used", "Total Cost",
}

// Workbook builds an xlsx file with Tasks, Inspections and Consumables
// sheets. The caller is responsible for saving it.
func Workbook(tasks []*primary.Task, inspections []*primary.Inspection, consumables []*primary.ConsumableUsage) (*excelize.File, error) {
	f := excelize.NewFile()

	taskRows := make([][]any, len(tasks))
	for i, t := range tasks {
		taskRows[i] = []any{t.ID, t.LocationID, t.TaskDate, t.TaskTime, t.CleanerID, t.TaskType, t.Status, t.DurationMins, t.Notes}
	}
	if err := addSheet(f, "Tasks", taskHeaders, taskRows); err != nil {
		return nil, err
	}

	inspectionRows := make([][]any, len(inspections))
	for i, insp := range inspections {
		inspectionRows[i] = []any{insp.ID, insp.LocationID, insp.InspectDate, insp.HygieneScore, insp.AuditorID, insp.IssuesFound, insp.CorrectiveActions, insp.Feedback}
	}
	if err := addSheet(f, "Inspections", inspectionHeaders, inspectionRows); err != nil {
		return nil, err
	}

	consumableRows := make([][]any, len(consumables))
	for i, c := range consumables {
		consumableRows[i] = []any{c.UsageID, c.UsageDate, c.LocationID, c.ResourceType, c.QuantityUsed, c.TotalCost}
	}
	if err := addSheet(f, "Consumables", consumableHeaders, consumableRows); err != nil {
		return nil, err
	}

	// Drop the default sheet so the workbook opens on Tasks
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("error removing default sheet: %v", err)
	}
	if index, err := f.GetSheetIndex("Tasks"); err == nil {
		f.SetActiveSheet(index)
	}

	return f, nil
}

func addSheet(f *excelize.File, name string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(name, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(name, 1, 1, headerStyle)
	}

	for rowIndex, values := range rows {
		row := rowIndex + 2 // Start from row 2 (after headers)
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(name, cell, value)
		}
	}

	for i := range headers {
		col := string('A' + rune(i))
		f.SetColWidth(name, col, col, 18)
	}

	return nil
}
