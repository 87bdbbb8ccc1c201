package table

type Widget struct {
	A string  `table:"a"`
	B bool    `table:"b"`
	C *string `table:"c"`
}

type Person struct {
	ID    int    `table:"id,pk"`
	Name  string `table:"name"`
	OrgID int    `table:"org_id,fk"`
}

func strPtr(s string) *string { return &s }

func sampleWidget() *Widget {
	return &Widget{A: "x", B: true}
}

func sampleWidgets() []*Widget {
	return []*Widget{
		{A: "x", B: true},
		{A: "y", B: false, C: strPtr("note")},
		{A: "<z>", B: true},
	}
}
