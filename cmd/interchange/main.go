// Command interchange is the CLI tool for the interchange value layer.
// It converts values between types, renders and parses locale-formatted
// forms, inspects variable types, and moves file value content through the
// supported save media.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/interchange/core/convert"
	"github.com/FocuswithJustin/interchange/core/encoding"
	"github.com/FocuswithJustin/interchange/core/filescope"
	"github.com/FocuswithJustin/interchange/core/locale"
	"github.com/FocuswithJustin/interchange/core/typelib"
	"github.com/FocuswithJustin/interchange/core/values"
	"github.com/FocuswithJustin/interchange/core/vartype"
)

const version = "0.1.0"

// resolveType maps a user-supplied type name to its tag, rejecting names
// that FromString cannot place.
func resolveType(name string) (vartype.VariableType, error) {
	t := vartype.FromString(name)
	if t == vartype.Unknown {
		return t, fmt.Errorf("unrecognized variable type %q", name)
	}
	return t, nil
}

// CLI defines the command-line interface for interchange.
var CLI struct {
	// Command groups (noun-first organization)
	Value   ValueGroup `cmd:"" help:"Value operations (convert, display, parse)"`
	Type    TypeGroup  `cmd:"" help:"Variable type inspection"`
	File    FileGroup  `cmd:"" help:"File value content operations"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ValueGroup contains operations on serialized values.
type ValueGroup struct {
	Convert ValueConvertCmd `cmd:"" help:"Convert a value to another type"`
	Display ValueDisplayCmd `cmd:"" help:"Render a value for a locale"`
	Parse   ValueParseCmd   `cmd:"" help:"Parse a value and print its canonical form"`
}

// TypeGroup contains variable type inspection operations.
type TypeGroup struct {
	Info    TypeInfoCmd    `cmd:"" help:"Describe a variable type"`
	Compat  TypeCompatCmd  `cmd:"" help:"Report linking compatibility between two types"`
	Default TypeDefaultCmd `cmd:"" help:"Print the default value of a type"`
}

// FileGroup contains file content operations.
type FileGroup struct {
	Ingest  FileIngestCmd  `cmd:"" help:"Save a file into a content store and print its value"`
	Extract FileExtractCmd `cmd:"" help:"Extract stored file content by identifier"`
}

// ValueConvertCmd converts a value from one type to another.
type ValueConvertCmd struct {
	Type  string `name:"type" required:"" help:"Type of the input value (e.g. real, int[])"`
	To    string `name:"to" required:"" help:"Destination type"`
	Value string `arg:"" help:"Value in canonical string form"`
}

func (c *ValueConvertCmd) Run() error {
	src, err := resolveType(c.Type)
	if err != nil {
		return err
	}
	dst, err := resolveType(c.To)
	if err != nil {
		return err
	}
	v, err := encoding.FromAPIString(src, c.Value, nil, nil)
	if err != nil {
		return err
	}
	out, err := convert.To(v, dst)
	if err != nil {
		return err
	}
	s, err := encoding.ToAPIString(out, nil)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// ValueDisplayCmd renders a canonical value in locale-formatted form.
type ValueDisplayCmd struct {
	Type   string `name:"type" required:"" help:"Type of the input value"`
	Locale string `name:"locale" default:"en-US" help:"Locale to render for (e.g. de-DE)"`
	Value  string `arg:"" help:"Value in canonical string form"`
}

func (c *ValueDisplayCmd) Run() error {
	t, err := resolveType(c.Type)
	if err != nil {
		return err
	}
	v, err := encoding.FromAPIString(t, c.Value, nil, nil)
	if err != nil {
		return err
	}
	info, err := locale.Resolve(c.Locale)
	if err != nil {
		return err
	}
	s, err := locale.ToDisplayString(v, info)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// ValueParseCmd parses a value, optionally in locale-formatted form, and
// prints the canonical string.
type ValueParseCmd struct {
	Type   string `name:"type" required:"" help:"Type to parse the value as"`
	Locale string `name:"locale" help:"Treat the input as locale-formatted for this locale"`
	Value  string `arg:"" help:"Value to parse"`
}

func (c *ValueParseCmd) Run() error {
	t, err := resolveType(c.Type)
	if err != nil {
		return err
	}
	var v values.Value
	if c.Locale != "" {
		info, err := locale.Resolve(c.Locale)
		if err != nil {
			return err
		}
		v, err = locale.FromDisplayString(t, c.Value, info)
		if err != nil {
			return err
		}
	} else {
		v, err = encoding.FromAPIString(t, c.Value, nil, nil)
		if err != nil {
			return err
		}
	}
	s, err := encoding.ToAPIString(v, nil)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// TypeInfoCmd describes a variable type.
type TypeInfoCmd struct {
	Name string `arg:"" help:"Type name or alias (e.g. integer, double[], bool)"`
}

func (c *TypeInfoCmd) Run() error {
	t, err := resolveType(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("name:     %s\n", t)
	fmt.Printf("api name: %s\n", t.APIName())
	fmt.Printf("array:    %v\n", vartype.IsArray(t))
	if vartype.IsArray(t) {
		elem, err := vartype.ElementType(t)
		if err != nil {
			return err
		}
		fmt.Printf("element:  %s\n", elem)
	} else if arr, err := vartype.ToArrayType(t); err == nil {
		fmt.Printf("array of: %s\n", arr)
	}
	return nil
}

// TypeCompatCmd reports the linking compatibility of two types.
type TypeCompatCmd struct {
	Source string `arg:"" help:"Source type"`
	Dest   string `arg:"" help:"Destination type"`
}

func (c *TypeCompatCmd) Run() error {
	src, err := resolveType(c.Source)
	if err != nil {
		return err
	}
	dst, err := resolveType(c.Dest)
	if err != nil {
		return err
	}
	compat := typelib.Compatible(src, dst)
	fmt.Printf("allowed:         %v\n", compat.Allowed)
	fmt.Printf("lossy:           %v\n", compat.Lossy)
	fmt.Printf("runtime checked: %v\n", compat.RuntimeChecked)
	return nil
}

// TypeDefaultCmd prints the default value of a type in canonical form.
type TypeDefaultCmd struct {
	Name string `arg:"" help:"Type name or alias"`
}

func (c *TypeDefaultCmd) Run() error {
	t, err := resolveType(c.Name)
	if err != nil {
		return err
	}
	v, err := values.Default(t)
	if err != nil {
		return err
	}
	s, err := encoding.ToAPIString(v, nil)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// FileIngestCmd saves a file into a content store and prints the file value
// in API form.
type FileIngestCmd struct {
	Path     string `arg:"" type:"path" help:"File to ingest"`
	Store    string `name:"store" enum:"dir,sqlite,archive" default:"dir" help:"Save medium"`
	Dest     string `name:"dest" required:"" type:"path" help:"Store directory, database, or archive path"`
	MimeType string `name:"mime-type" help:"MIME type of the content"`
	Encoding string `name:"encoding" help:"Text encoding of the content"`
}

func (c *FileIngestCmd) Run() error {
	scope := filescope.NewNonManagingScope()
	defer scope.Close()

	v, err := scope.ReadFromFile(c.Path, c.MimeType, c.Encoding)
	if err != nil {
		return err
	}

	var save filescope.SaveContext
	switch c.Store {
	case "dir":
		dirScope, err := filescope.NewDirectoryScope(c.Dest)
		if err != nil {
			return err
		}
		save = dirScope.SaveContext()
	case "sqlite":
		db, err := filescope.OpenSQLiteContext(c.Dest)
		if err != nil {
			return err
		}
		defer db.Close()
		save = db
	case "archive":
		save = filescope.NewArchiveSaveContext(c.Dest)
	}

	s, err := encoding.ToAPIString(v, save)
	if err != nil {
		return err
	}
	if err := save.Flush(); err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// FileExtractCmd resolves a content identifier in a store and copies the
// content to a local file.
type FileExtractCmd struct {
	Source string `arg:"" type:"path" help:"Store directory, database, or archive path"`
	ID     string `arg:"" help:"Content identifier"`
	Store  string `name:"store" enum:"dir,sqlite,archive" default:"dir" help:"Save medium"`
	Out    string `name:"out" required:"" type:"path" help:"Destination file"`
}

func (c *FileExtractCmd) Run() error {
	var load filescope.LoadContext
	switch c.Store {
	case "dir":
		dirScope, err := filescope.NewDirectoryScope(c.Source)
		if err != nil {
			return err
		}
		load = dirScope.LoadContext()
	case "sqlite":
		db, err := filescope.OpenSQLiteContext(c.Source)
		if err != nil {
			return err
		}
		defer db.Close()
		load = db
	case "archive":
		lc := filescope.NewArchiveLoadContext(c.Source)
		defer lc.Close()
		load = lc
	}

	path, err := load.LoadFile(c.ID)
	if err != nil {
		return err
	}
	return copyFile(path, c.Out)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("interchange %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("interchange"),
		kong.Description("Typed variable value interchange tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
