package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath    string
	AuditDBPath   string
	AuditDBExists bool
	OnError       string
	Pretty        bool
	AppDataDir    string
}

func RenderSystemInfo(data SystemInfoItem) error {
	configPath := data.ConfigPath
	if configPath == "" {
		configPath = "(none, using defaults)"
	}

	auditPath := data.AuditDBPath
	auditStatus := "disabled"
	if auditPath != "" {
		if data.AuditDBExists {
			auditStatus = pterm.Green("found")
		} else {
			auditStatus = pterm.Red("not found (will be created)")
		}
	} else {
		auditPath = "(not set)"
	}

	pretty := "csv"
	if data.Pretty {
		pretty = "table"
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"Audit Database", auditPath},
		{"Audit Database Status", auditStatus},
		{"Error Policy", data.OnError},
		{"Default Output", pretty},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
