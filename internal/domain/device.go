package domain

import (
	"fmt"
	"io"
)

// Document is the payload every device works on.
type Document struct {
	Name string
}

// Machine is the fat antecedent interface. Devices that lack a capability
// still have to implement it and fail at call time.
type Machine interface {
	Print(d Document) error
	Scan(d Document) error
	Fax(d Document) error
}

// Segregated capability interfaces: a device implements only what it does,
// so calling an unsupported operation does not compile.
type Printer interface {
	Print(d Document)
}

type Scanner interface {
	Scan(d Document)
}

type Fax interface {
	Fax(d Document)
}

// MultiFunctionPrinter supports every Machine operation.
type MultiFunctionPrinter struct {
	Out io.Writer
}

func (m MultiFunctionPrinter) Print(d Document) error { return job(m.Out, "print", d) }
func (m MultiFunctionPrinter) Scan(d Document) error  { return job(m.Out, "scan", d) }
func (m MultiFunctionPrinter) Fax(d Document) error   { return job(m.Out, "fax", d) }

// OldSchoolPrinter can only print but is forced to carry Scan and Fax.
type OldSchoolPrinter struct {
	Out io.Writer
}

func (o OldSchoolPrinter) Print(d Document) error { return job(o.Out, "print", d) }
func (o OldSchoolPrinter) Scan(Document) error    { return notSupported("old_school_printer.scan") }
func (o OldSchoolPrinter) Fax(Document) error     { return notSupported("old_school_printer.fax") }

var (
	_ Machine = MultiFunctionPrinter{}
	_ Machine = OldSchoolPrinter{}
)

// MultiFunctionDevice prints, scans and faxes.
type MultiFunctionDevice struct {
	Out io.Writer
}

func (m MultiFunctionDevice) Print(d Document) { _ = job(m.Out, "print", d) }
func (m MultiFunctionDevice) Scan(d Document)  { _ = job(m.Out, "scan", d) }
func (m MultiFunctionDevice) Fax(d Document)   { _ = job(m.Out, "fax", d) }

// JustAPrinter only prints.
type JustAPrinter struct {
	Out io.Writer
}

func (p JustAPrinter) Print(d Document) { _ = job(p.Out, "print", d) }

// Photocopier prints and scans.
type Photocopier struct {
	Out io.Writer
}

func (p Photocopier) Print(d Document) { _ = job(p.Out, "print", d) }
func (p Photocopier) Scan(d Document)  { _ = job(p.Out, "scan", d) }

var (
	_ Printer = MultiFunctionDevice{}
	_ Scanner = MultiFunctionDevice{}
	_ Fax     = MultiFunctionDevice{}
	_ Printer = JustAPrinter{}
	_ Printer = Photocopier{}
	_ Scanner = Photocopier{}
)

// Capabilities lists which segregated interfaces v satisfies, in
// print/scan/fax order.
func Capabilities(v any) []string {
	var out []string
	if _, ok := v.(Printer); ok {
		out = append(out, "print")
	}
	if _, ok := v.(Scanner); ok {
		out = append(out, "scan")
	}
	if _, ok := v.(Fax); ok {
		out = append(out, "fax")
	}
	return out
}

func job(w io.Writer, op string, d Document) error {
	if w == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", op, d.Name)
	return err
}

func notSupported(op string) error {
	return &OpError{
		Op:   op,
		Kind: KindNotSupported,
		Err:  ErrNotSupported,
	}
}
