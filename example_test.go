package formtable_test

import (
	"fmt"

	"github.com/goliatone/go-formtable"
)

type Invoice struct {
	Number string `table:"number"`
	Paid   bool   `table:"paid"`
}

func ExampleRender() {
	out, err := formtable.Render(&Invoice{Number: "INV-7", Paid: true},
		formtable.WithAliasFor("number", "invoice_no"),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// <table>
	// <caption>Invoice</caption>
	// <tbody>
	// <tr>
	// <th>Invoice no</th>
	// <td>INV-7</td>
	// </tr>
	// <tr>
	// <th>Paid</th>
	// <td><em>true</em></td>
	// </tr>
	// </tbody>
	// </table>
}

func ExampleNewCollection() {
	invoices := []*Invoice{{Number: "INV-1"}, {Number: "INV-2", Paid: true}}
	out, err := formtable.NewCollection(invoices).Render(formtable.WithInclude("number"))
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// <table>
	// <caption>Invoice (2)</caption>
	// <thead>
	// <tr>
	// <th>Number</th>
	// </tr>
	// </thead>
	// <tbody>
	// <tr>
	// <td>INV-1</td>
	// </tr>
	// <tr>
	// <td>INV-2</td>
	// </tr>
	// </tbody>
	// </table>
}
