package taskviz

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
	Quadrant4  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	// optimal, aligned, neglected, overinvested
	Quadrant4 = splitColorString("3b82f622c55eef4444f59e0b")
}

func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return "currentColor"
	}
	return p[i%len(p)]
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
