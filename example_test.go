package dcmeta_test

import (
	"fmt"

	"github.com/reoring/dcmeta"
)

func ExampleClassify() {
	el := dcmeta.Element{
		Namespace:  dcmeta.NS("dc"),
		Name:       "title",
		Attributes: map[string]string{"id": "foo", "dir": "ltr"},
		Text:       "T",
	}
	switch m := dcmeta.Classify(el).(type) {
	case dcmeta.Title:
		id, _ := m.ID.Value()
		dir, _ := m.Dir.Get()
		fmt.Println(id, dir, m.Text)
	case dcmeta.Unrecognized:
		fmt.Println("skipped:", m.Code)
	}
	// Output: foo ltr T
}

func ExampleFrom() {
	_, ok := dcmeta.From(dcmeta.Element{Namespace: dcmeta.NS("dc"), Name: "meta"})
	fmt.Println(ok)
	// Output: false
}

func ExampleTitleElement_Issues() {
	m := dcmeta.Classify(dcmeta.Element{
		Namespace:  dcmeta.NS("dc"),
		Name:       "title",
		Attributes: map[string]string{"dir": "up"},
	})
	t := m.(dcmeta.Title)
	_, ok := t.Dir.Get()
	fmt.Println(ok, t.Dir.State, t.Issues())
	// Output: false invalid invalid_enum at /@dir ("up")
}
