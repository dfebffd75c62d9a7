package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
)

// Demo is one fixed, input-free walkthrough of a design principle.
type Demo struct {
	Name      string
	Principle string
	Summary   string

	run func(ctx context.Context, w io.Writer) error
}

// Demos runs the five principle walkthroughs against an injected output.
type Demos struct {
	store       ports.JournalStore
	journalName string
	log         *slog.Logger
	list        []Demo
}

type DemosOption func(*Demos)

// WithJournalStore makes the journal demo persist its journal under name.
func WithJournalStore(store ports.JournalStore, name string) DemosOption {
	return func(d *Demos) {
		d.store = store
		d.journalName = name
	}
}

func WithDemosLogger(l *slog.Logger) DemosOption {
	return func(d *Demos) {
		if l != nil {
			d.log = l
		}
	}
}

func NewDemos(opts ...DemosOption) *Demos {
	d := &Demos{
		journalName: "journal.txt",
		log:         slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.list = []Demo{
		{Name: "journal", Principle: "Single responsibility", Summary: "A journal that holds entries; saving is someone else's job", run: d.journal},
		{Name: "products", Principle: "Open/closed", Summary: "Filter products with composable specifications", run: d.products},
		{Name: "shapes", Principle: "Liskov substitution", Summary: "Why a Square is not a drop-in Rectangle", run: d.shapes},
		{Name: "devices", Principle: "Interface segregation", Summary: "Printers, scanners and faxes as separate capabilities", run: d.devices},
		{Name: "family", Principle: "Dependency inversion", Summary: "Query children through an abstraction, not raw facts", run: d.family},
	}
	return d
}

func (d *Demos) List() []Demo {
	out := make([]Demo, len(d.list))
	copy(out, d.list)
	return out
}

func (d *Demos) Get(name string) (Demo, bool) {
	for _, demo := range d.list {
		if demo.Name == name {
			return demo, true
		}
	}
	return Demo{}, false
}

// Run executes the named demo, writing everything it shows to w.
func (d *Demos) Run(ctx context.Context, name string, w io.Writer) error {
	demo, ok := d.Get(name)
	if !ok {
		return &domain.OpError{
			Op:   "demos.run",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("demo %q: %w", name, domain.ErrNotFound),
		}
	}

	d.log.Info("demo.run", "name", demo.Name)
	if err := demo.run(ctx, w); err != nil {
		d.log.Error("demo.failed", "name", demo.Name, "err", err)
		return err
	}
	return nil
}

// RunAll executes every demo in order with a heading per principle.
func (d *Demos) RunAll(ctx context.Context, w io.Writer) error {
	for i, demo := range d.list {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s) ==\n", demo.Principle, demo.Name)
		if err := d.Run(ctx, demo.Name, w); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demos) journal(ctx context.Context, w io.Writer) error {
	j := domain.NewJournal()
	j.AddEntry("Hello World")
	j.AddEntry("The world is fire")
	fmt.Fprintln(w, j)

	if d.store == nil {
		fmt.Fprintln(w, "(no journal store configured; not saved)")
		return nil
	}
	if err := d.store.Save(ctx, j, d.journalName, true); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved journal to %s\n", d.journalName)
	return nil
}

func (d *Demos) products(_ context.Context, w io.Writer) error {
	apple := domain.NewProduct("Apple", domain.Green, domain.Small)
	tree := domain.NewProduct("Tree", domain.Green, domain.Large)
	house := domain.NewProduct("House", domain.Blue, domain.Large)
	products := []domain.Product{apple, tree, house}

	fmt.Fprintln(w, "Green products (old):")
	for _, p := range (domain.ProductFilter{}).FilterByColor(products, domain.Green) {
		fmt.Fprintf(w, " - %s is green\n", p.Name)
	}

	var bf domain.BetterFilter[domain.Product]
	fmt.Fprintln(w, "Green products (new):")
	for p := range bf.Filter(products, domain.ColorSpecification{Color: domain.Green}) {
		fmt.Fprintf(w, " - %s is green\n", p.Name)
	}

	fmt.Fprintln(w, "Blue and large products (new):")
	blueAndLarge := domain.And[domain.Product](
		domain.ColorSpecification{Color: domain.Blue},
		domain.SizeSpecification{Size: domain.Large},
	)
	for p := range bf.Filter(products, blueAndLarge) {
		fmt.Fprintf(w, " - %s is blue and large\n", p.Name)
	}
	return nil
}

func (d *Demos) shapes(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Rectangle 2x3:")
	UseIt(w, domain.NewRectangle(2, 3))

	sq := domain.NewSquareShape(0)
	sq.SetHeight(5)
	fmt.Fprintln(w, "Square subtype with side 5:")
	UseIt(w, sq)

	fmt.Fprintln(w, "Factory rectangle 2x3:")
	UseIt(w, domain.NewRectangle(2, 3))
	fmt.Fprintln(w, "Factory square 5:")
	UseIt(w, domain.NewSquare(5))

	fmt.Fprintln(w, "Immutable shapes:")
	for _, s := range []domain.Shape{domain.RectShape{W: 2, H: 3}, domain.SquareShape{Side: 5}} {
		fmt.Fprintf(w, " - %T area %d\n", s, s.Area())
	}
	return nil
}

func (d *Demos) devices(_ context.Context, w io.Writer) error {
	doc := domain.Document{Name: "report.pdf"}

	fmt.Fprintln(w, "Fat interface:")
	machines := []struct {
		name string
		m    domain.Machine
	}{
		{"multi-function printer", domain.MultiFunctionPrinter{Out: w}},
		{"old-school printer", domain.OldSchoolPrinter{Out: w}},
	}
	for _, mc := range machines {
		fmt.Fprintf(w, "%s:\n", mc.name)
		for _, op := range []func(domain.Document) error{mc.m.Print, mc.m.Scan, mc.m.Fax} {
			if err := op(doc); err != nil {
				fmt.Fprintf(w, "  error: %v\n", err)
			}
		}
	}

	fmt.Fprintln(w, "Segregated capabilities:")
	devices := []struct {
		name string
		dev  any
	}{
		{"multi-function device", domain.MultiFunctionDevice{Out: w}},
		{"just a printer", domain.JustAPrinter{Out: w}},
		{"photocopier", domain.Photocopier{Out: w}},
	}
	for _, dc := range devices {
		fmt.Fprintf(w, "%s %v:\n", dc.name, domain.Capabilities(dc.dev))
		if p, ok := dc.dev.(domain.Printer); ok {
			p.Print(doc)
		}
		if s, ok := dc.dev.(domain.Scanner); ok {
			s.Scan(doc)
		}
		if f, ok := dc.dev.(domain.Fax); ok {
			f.Fax(doc)
		}
	}
	return nil
}

func (d *Demos) family(_ context.Context, w io.Writer) error {
	parent := domain.Person{Name: "John"}
	r := domain.NewRelationships()
	r.AddParentAndChild(parent, domain.Person{Name: "Mike"})
	r.AddParentAndChild(parent, domain.Person{Name: "Abel"})

	fmt.Fprintln(w, "Low-level scan:")
	NewResearch(r).Execute(w, parent.Name)

	fmt.Fprintln(w, "Through RelationshipBrowser:")
	NewBetterResearch(r).Execute(w, parent.Name)
	return nil
}
