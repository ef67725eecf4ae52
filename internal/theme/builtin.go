package theme

// Builtin returns the themes offered by the chart editor, in display order.
func Builtin() []Theme {
	return []Theme{
		{ID: "ocean", Name: "Ocean", Colors: []string{"#0F4C81", "#2D9596", "#45B7B8", "#6DD5D8", "#8FF0F3"}},
		{ID: "sunset", Name: "Sunset", Colors: []string{"#FF6B6B", "#FF8573", "#FFA07A", "#FFB482", "#FFC78A"}},
		{ID: "forest", Name: "Forest", Colors: []string{"#2E7D32", "#4CAF50", "#66BB6A", "#81C784", "#A5D6A7"}},
		{ID: "berry", Name: "Berry", Colors: []string{"#9C27B0", "#BA68C8", "#CE93D8", "#E1BEE7", "#F3E5F5"}},
		{ID: "midnight", Name: "Midnight", Colors: []string{"#1A237E", "#303F9F", "#3949AB", "#3F51B5", "#5C6BC0"}},
		{ID: "neon", Name: "Neon", Colors: []string{"#FF1493", "#FF69B4", "#FFB6C1", "#00FFFF", "#40E0D0"}},
		{ID: "frost", Name: "Frost", Colors: []string{"#E0F7FA", "#B2EBF2", "#80DEEA", "#4DD0E1", "#26C6DA"}, LightSurface: true},
		{ID: "grainy", Name: "Grainy", Colors: []string{"#6B46C1", "#805AD5", "#9F7AEA", "#B794F4", "#D6BCFA"}},
		{ID: "glass", Name: "Glass", Colors: []string{"#F8FAFC", "#F1F5F9", "#E2E8F0", "#CBD5E1", "#94A3B8"}, LightSurface: true},
		{ID: "retro", Name: "Retro", Colors: []string{"#FF8C00", "#FF7F50", "#FF6347", "#FF4500", "#FF3300"}},
		{ID: "shadow", Name: "Shadow", Colors: []string{"#1E293B", "#334155", "#475569", "#64748B", "#94A3B8"}},
		{ID: "candy", Name: "Candy", Colors: []string{"#EC4899", "#F472B6", "#F9A8D4", "#FBCFE8", "#FCE7F3"}},
	}
}
