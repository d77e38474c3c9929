package tools

// Definition describes a tool exposed to MCP clients.
type Definition struct {
	Name        string
	Description string
	Parameters  []Parameter
}

type ParameterType string

const (
	ParamString  ParameterType = "string"
	ParamNumber  ParameterType = "number"
	ParamBoolean ParameterType = "boolean"
)

type Parameter struct {
	Name        string
	Type        ParameterType
	Description string
	Required    bool
}

func (pt ParameterType) JSONType() string {
	switch pt {
	case ParamString:
		return "string"
	case ParamNumber:
		return "number"
	case ParamBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// deliveryParams are shared by every capture tool.
var deliveryParams = []Parameter{
	{Name: "format", Type: ParamString, Description: "image format: png or jpeg (default png)"},
	{Name: "quality", Type: ParamNumber, Description: "JPEG quality (0-100)"},
	{Name: "max_width", Type: ParamNumber, Description: "downscale the image to at most this many pixels wide"},
	{Name: "return", Type: ParamString, Description: "delivery mode: binary (inline) or file (writes to disk)"},
	{Name: "output", Type: ParamString, Description: "optional path to save the capture on disk when return=file"},
}

var definitions = []Definition{
	{
		Name:        "get_screen_info",
		Description: "Report the number of connected displays and the id, position, and size of each one.",
	},
	{
		Name:        "capture_screen_by_number",
		Description: "Capture a screenshot of a single display identified by its monitor number.",
		Parameters: append([]Parameter{
			{
				Name:        "monitor_number",
				Type:        ParamNumber,
				Description: "the monitor number to capture, as reported by get_screen_info",
				Required:    true,
			},
		}, deliveryParams...),
	},
	{
		Name:        "capture_all_screens",
		Description: "Capture every connected display and stitch the captures into one image preserving their relative positions.",
		Parameters:  deliveryParams,
	},
	{
		Name:        "get_window_list",
		Description: "List the currently open windows with their id, title, position, and size.",
	},
	{
		Name:        "capture_window",
		Description: "Capture a screenshot of a single window identified by its id.",
		Parameters: append([]Parameter{
			{
				Name:        "window_id",
				Type:        ParamNumber,
				Description: "the window id to capture, as reported by get_window_list",
				Required:    true,
			},
		}, deliveryParams...),
	},
}

// List returns the full tool catalog in registration order.
func List() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for a tool name.
func Lookup(name string) (Definition, bool) {
	for _, def := range definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
