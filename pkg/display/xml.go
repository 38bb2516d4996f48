package display

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
)

// writeXML emits the run report as an XML document. The element layout is
// kept flat so Windows-side scripts can consume it with plain XPath.
func writeXML(out io.Writer, report Report) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	run := doc.CreateElement("run")
	run.CreateAttr("id", report.RunID)
	run.CreateAttr("generatedAt", report.GeneratedAt)

	summary := run.CreateElement("summary")
	summary.CreateAttr("success", fmt.Sprintf("%d", report.Success))
	summary.CreateAttr("skipped", fmt.Sprintf("%d", report.Skipped))
	summary.CreateAttr("errors", fmt.Sprintf("%d", report.Errors))
	if report.Critical > 0 {
		summary.CreateAttr("critical", fmt.Sprintf("%d", report.Critical))
	}
	if report.NothingToDo {
		summary.CreateAttr("nothingToDo", "true")
	}

	tasks := run.CreateElement("tasks")
	for _, task := range report.Tasks {
		el := tasks.CreateElement("task")
		el.CreateAttr("name", task.Name)
		el.CreateAttr("status", task.Status)
		el.CreateElement("source").SetText(task.Source)
		el.CreateElement("target").SetText(task.Target)
		if task.Reason != "" {
			el.CreateElement("reason").SetText(task.Reason)
		}
		if task.Error != "" {
			errEl := el.CreateElement("error")
			errEl.SetText(task.Error)
			if task.Critical {
				errEl.CreateAttr("critical", "true")
			}
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(out)
	return err
}
