package stf

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	v3 "github.com/dxu16/peppr/v3"
	"github.com/klauspost/compress/zstd"
)

//StfW writes frames to an stf trajectory file.
type StfW struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	mult      float64
}

//NewWriter creates the file name and returns a handle ready to receive
//frames of natoms atoms each. The optional argument sets the precision
//(decimal places kept per coordinate); the default is 2.
func NewWriter(name string, natoms int, precision ...int) (*StfW, error) {
	prec := 2
	if len(precision) > 0 {
		if precision[0] <= 0 {
			return nil, Error{fmt.Sprintf("Invalid precision: %d", precision[0]), name, []string{"NewWriter"}, true}
		}
		prec = precision[0]
	}
	S := new(StfW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	S.h, err = zstd.NewWriter(S.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		S.f.Close()
		return nil, Error{"Can't set up the compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	S.natoms = natoms
	S.filename = name
	S.mult = math.Pow(10, float64(prec))
	S.writeable = true
	S.h.Write([]byte(fmt.Sprintf("prec=%d\n", prec)))
	S.h.Write([]byte(fmt.Sprintf("** %d\n", natoms)))
	return S, nil
}

//WNext writes coord as the next frame of the trajectory.
func (S *StfW) WNext(coord *v3.Matrix) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	if v := coord.NVecs(); v != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	for i := 0; i < S.natoms; i++ {
		x := int(math.RoundToEven(coord.At(i, 0) * S.mult))
		y := int(math.RoundToEven(coord.At(i, 1) * S.mult))
		z := int(math.RoundToEven(coord.At(i, 2) * S.mult))
		if _, err := fmt.Fprintf(S.h, "%d %d %d\n", x, y, z); err != nil {
			return Error{err.Error(), S.filename, []string{"WNext"}, true}
		}
	}
	if _, err := S.h.Write([]byte("*\n")); err != nil {
		return Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	return nil
}

//Len returns the number of atoms per frame.
func (S *StfW) Len() int {
	return S.natoms
}

//Close flushes the compressor and closes the file. The handle can not be
//written to after this call. Frames are not guaranteed to be on disk
//before Close returns.
func (S *StfW) Close() {
	if S == nil || !S.writeable {
		return
	}
	S.h.Close()
	S.f.Close()
	S.writeable = false
}

//StfR reads frames back from an stf trajectory file.
type StfR struct {
	f        *os.File
	zr       io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	mult     float64
	readable bool
}

//zstd.Decoder.Close returns nothing, so it needs a wrapper to pass as an
//io.ReadCloser.
type zstdCloser struct {
	closer func()
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.closer()
	return nil
}

//New opens an stf trajectory for reading. It returns the handle and the
//key=value metadata found in the header.
func New(name string) (*StfR, map[string]string, error) {
	S := new(StfR)
	S.filename = name
	S.natoms = -1
	S.mult = 100.0
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, nil, Error{err.Error(), name, []string{"New"}, true}
	}
	dec, err := zstd.NewReader(bufio.NewReader(S.f))
	if err != nil {
		S.f.Close()
		return nil, nil, Error{"Can't set up the decompressor: " + err.Error(), name, []string{"New"}, true}
	}
	S.zr = zstdCloser{dec.Close, dec}
	S.h = bufio.NewReader(S.zr)
	m := make(map[string]string)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) < 2 {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s'", str), name, []string{"New"}, true}
			}
			S.natoms, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("Can't read atom number from '%s': %s", fields[1], err.Error()), name, []string{"New"}, true}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, name, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil || prec <= 0 {
			return nil, nil, Error{"Invalid precision in header: " + p, name, []string{"New"}, true}
		}
		S.mult = math.Pow(10, float64(prec))
	}
	S.readable = true
	return S, m, nil
}

//Readable returns true if it is still possible to call Next on the
//handle.
func (S *StfR) Readable() bool {
	return S.readable
}

//Len returns the number of atoms in each frame of the trajectory.
func (S *StfR) Len() int {
	return S.natoms
}

//Next puts the coordinates of the next frame in c. A nil c skips the
//frame, still checking it for correctness. When the trajectory is over,
//Next returns a non-critical error for which LastFrame is true.
func (S *StfR) Next(c *v3.Matrix) error {
	if !S.readable {
		return Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	for i := 0; i < S.natoms; i++ {
		str, err := S.h.ReadString('\n')
		if err != nil {
			if err == io.EOF && i == 0 {
				S.Close()
				return newlastFrameError(S.filename, "Next")
			}
			return Error{ReadError + ": " + err.Error(), S.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(str)
		if len(fields) != 3 {
			return Error{WrongFormat + ": " + strings.TrimSuffix(str, "\n"), S.filename, []string{"Next"}, true}
		}
		for j, v := range fields {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Error{fmt.Sprintf("Can't parse coordinate %d (%s): %s", j, v, err.Error()), S.filename, []string{"Next"}, true}
			}
			if c != nil {
				c.Set(i, j, float64(n)/S.mult)
			}
		}
	}
	str, err := S.h.ReadString('\n')
	if err != nil || !strings.HasPrefix(str, "*") {
		return Error{"Missing frame termination mark", S.filename, []string{"Next"}, true}
	}
	return nil
}

//Close closes the handle and marks it as unreadable.
func (S *StfR) Close() {
	if !S.readable {
		return
	}
	S.zr.Close()
	S.f.Close()
	S.readable = false
}

//Error is the general type for trajectory errors.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("stf file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (E Error) Decorate(deco string) []string {
	//E.deco is a slice, so appending to it works even without a pointer
	//receiver.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the failing trajectory.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Trajectory not initialized for reading"
	TrajUnIniWrite = "Trajectory not initialized for writing"
	ReadError      = "Error reading frame"
	NilCoordinates = "Given nil coordinates"
	WrongFormat    = "Ill-formatted coordinates line"
)

//lastFrameError signals the normal end of a trajectory.
type lastFrameError struct {
	deco     []string
	fileName string
}

//LastFrame marks the error as a normal trajectory termination.
func (E lastFrameError) LastFrame() bool { return true }

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}

//LastFrame returns true if err signals a normal end of trajectory rather
//than an actual problem.
func LastFrame(err error) bool {
	_, ok := err.(interface{ LastFrame() bool })
	return ok
}
