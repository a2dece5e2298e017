// Package aoc is a small runner and a grab bag of helpers for solving
// Advent of Code puzzles.
//
// Solutions are methods named D{day}p{part} on a struct that embeds
// *Puzzle. A doc comment of the form
//
//	/*
//	want=142
//
//	sample input
//	*/
//
// on a method registers the sample for that part. A method whose comment
// only says "// want=..." reuses the previous sample input.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: strings.TrimSpace(m[1]), input: m[2]}, true
}

// extractSamples returns the samples declared on the funcs in src, keyed
// by func name.
func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			s.input = Or(s.input, lastInput)
			samples[fd.Name.Name] = s
			lastInput = s.input
			break
		}
	}
	return samples
}

// Puzzle is embedded by solvers and gives them access to the input of the
// part currently running.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	part    partSolver
	samples map[string]sample
	input   []byte // non-nil overrides both the sample and the real input
}

// NewPuzzle returns a Puzzle whose input is always in. It is meant for
// tests that call solver methods directly.
func NewPuzzle(in string) *Puzzle {
	return &Puzzle{input: []byte(in)}
}

// Input returns the puzzle input, fetching and caching it on disk if
// needed.
func (p *Puzzle) Input() []byte {
	if p.input != nil {
		return p.input
	}
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return fileOrFetch(
		fmt.Sprintf("%d/%d.input", p.year, p.day),
		fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day),
	)
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugging reports whether the sample is running with -debug.
func (p *Puzzle) Debugging() bool {
	return flagDebug && p.SampleMode
}

// Debugf prints when running the sample with -debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.Debugging() {
		fmt.Printf(format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.part.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.part.Name)
	}
	return s
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods returns the D{day}p{part} methods of x, grouped by day
// and sorted by part.
func extractMethods(x any) map[int][]partSolver {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	days := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		name := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %T; want func() any", name, v.Method(i).Interface())
		}
		d := Int(m[1])
		days[d] = append(days[d], partSolver{fn: fn, Part: m[2], Name: name})
	}
	for _, parts := range days {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagGroup      bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.BoolVar(&flagGroup, "group", false, "print answers with digit grouping")
}

var initFlags = sync.OnceFunc(flag.Parse)

// formatAnswer renders v for display. Sample checks always compare the
// plain fmt.Sprint form.
func formatAnswer(v any) string {
	if !flagGroup {
		return fmt.Sprint(v)
	}
	return message.NewPrinter(language.English).Sprint(v)
}

// runDay runs every part of one day. It returns false if a sample failed.
func runDay(slvr any, year, day int, parts []partSolver, samples map[string]sample) bool {
	p := &Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	fmt.Println("Running day", day)
	for _, ps := range parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		p.part = ps
		for _, sm := range []bool{true, false} {
			if (sm && flagSkipSample) || (!sm && flagOnlySample) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching isn't timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", ps.Part, formatAnswer(got), took)
				continue
			}
			want := p.Sample().want
			if fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
				return false
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
		}
	}
	return true
}

// Run runs the solutions on slvr, a pointer to a struct embedding
// *Puzzle. src is the source of the file declaring the solutions, used to
// find the samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	samples := extractSamples(src)
	days := extractMethods(slvr)

	if flagCurDay != -1 {
		parts, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(slvr, year, flagCurDay, parts, samples) {
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	ok := true
	for _, d := range dayNums {
		ok = runDay(slvr, year, d, days[d], samples) && ok
		fmt.Println()
	}
	if !ok {
		os.Exit(1)
	}
}

// session returns the adventofcode.com session cookie. AOC_SESSION wins,
// optionally set from a .env file; otherwise ~/keys/aoc.session is read.
var session = sync.OnceValue(func() string {
	_ = godotenv.Load() // .env is optional
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
})

func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}
	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	req := MustGet(http.NewRequest("GET", url, nil))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	res := MustGet(http.DefaultClient.Do(req))
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Fatalf("bad status fetching %s: %v", url, res.Status)
	}
	return MustGet(io.ReadAll(res.Body))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// TrimPrefix is strings.CutPrefix that dies if prefix is missing.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		log.Fatalf("bad prefix: %q", s)
	}
	return s1
}
