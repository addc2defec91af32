// Command keysheet generates a random password from the selected character
// classes and, when a purpose is given, records it in the password sheet.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/keysheet/keysheet-go/internal/model"
	"github.com/keysheet/keysheet-go/internal/repository"
	"github.com/keysheet/keysheet-go/internal/service"
	"github.com/keysheet/keysheet-go/internal/system"
)

func main() {
	var (
		length    = flag.Int("length", 0, "password length (required, must be positive)")
		lower     = flag.Bool("lower", false, "include lowercase letters")
		upper     = flag.Bool("upper", false, "include uppercase letters")
		numbers   = flag.Bool("numbers", false, "include digits")
		symbols   = flag.Bool("symbols", false, "include symbols")
		purpose   = flag.String("purpose", "", "what the password is for; the record is saved only when set")
		sheet     = flag.String("sheet", defaultSheetPath(), "path to the password record sheet")
		openSheet = flag.Bool("open", false, "open the record sheet in the system default viewer and exit")
		quiet     = flag.Bool("quiet", false, "print only the password")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Generates a secure random password and records it in an xlsx sheet.\n")
		fmt.Fprintf(os.Stderr, "Do not keep the sheet open in a spreadsheet program while saving:\n")
		fmt.Fprintf(os.Stderr, "saving rewrites the file and a concurrent editor can lose the update.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *openSheet {
		if err := system.OpenFile(*sheet); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(os.Stderr, "record sheet does not exist yet")
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
		return
	}

	// Length and class selection are user-input errors, reported here
	// rather than escalated.
	if *length <= 0 {
		fmt.Fprintln(os.Stderr, "length has to be a positive number (-length)")
		os.Exit(2)
	}
	if !*lower && !*upper && !*numbers && !*symbols {
		fmt.Fprintln(os.Stderr, "select at least one character type (-lower, -upper, -numbers, -symbols)")
		os.Exit(2)
	}

	genService := service.NewGeneratorService()
	resp, err := genService.Generate(model.GenerateRequest{
		Length:    *length,
		Lowercase: lower,
		Uppercase: upper,
		Numbers:   numbers,
		Symbols:   symbols,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println(resp.Password)

	if *purpose == "" {
		// Nothing to record without a purpose.
		return
	}

	recordService := service.NewRecordService(repository.NewSheetStore(*sheet))
	rec, err := recordService.Save(model.RecordRequest{Purpose: *purpose, Password: resp.Password})
	if err != nil {
		fmt.Fprintf(os.Stderr, "saving record: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Fprintf(os.Stderr, "recorded %s at %s in %s\n", rec.Purpose, rec.Timestamp, *sheet)
	}
}

func defaultSheetPath() string {
	if path := os.Getenv("SHEET_PATH"); path != "" {
		return path
	}
	return "passwords_sheet.xlsx"
}
