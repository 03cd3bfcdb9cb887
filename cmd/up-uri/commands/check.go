package commands

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/uprotocol/up-go/internal/vectors"
	"github.com/uprotocol/up-go/pkg/uri/serializer"
)

// ErrVectorsFailed is returned by RunCheck when at least one vector fails.
var ErrVectorsFailed = errors.New("vectors failed")

// CheckResult summarizes a RunCheck run.
type CheckResult struct {
	Passed int
	Failed int
}

// RunCheck runs all vectors found at path (a file or a directory) against
// the serializers and prints one line per vector.
func RunCheck(s *Session, path string) (CheckResult, error) {
	var res CheckResult

	info, err := os.Stat(path)
	if err != nil {
		return res, err
	}
	var f *vectors.File
	if info.IsDir() {
		f, err = vectors.LoadDirectory(path)
	} else {
		f, err = vectors.LoadFile(path)
	}
	if err != nil {
		return res, err
	}

	report := func(kind, name string, err error) {
		if err != nil {
			res.Failed++
			fmt.Fprintf(s.Out, "FAIL %s/%s: %v\n", kind, name, err)
			return
		}
		res.Passed++
		fmt.Fprintf(s.Out, "PASS %s/%s\n", kind, name)
	}

	for _, v := range f.Micro {
		report("micro", v.Name, checkMicro(s, v))
	}
	for _, v := range f.Long {
		report("long", v.Name, checkLong(s, v))
	}

	fmt.Fprintf(s.Out, "\n%d passed, %d failed\n", res.Passed, res.Failed)
	if res.Failed > 0 {
		return res, ErrVectorsFailed
	}
	return res, nil
}

func checkMicro(s *Session, v vectors.MicroVector) error {
	var ms serializer.MicroURISerializer

	if v.URI == nil {
		_, err := ms.Deserialize(v.MicroBytes())
		return expectError(err, v.Error)
	}

	u, err := v.URI.ToUUri()
	if err != nil {
		return err
	}
	encoded, err := s.Encode(u, FormMicro)
	if v.Error != "" {
		return expectError(err, v.Error)
	}
	if err != nil {
		return err
	}
	if encoded != v.Micro {
		return fmt.Errorf("encoded %s, want %s", encoded, v.Micro)
	}

	decoded, err := ms.Deserialize(v.MicroBytes())
	if err != nil {
		return err
	}
	if !reflect.DeepEqual(decoded, u) {
		return fmt.Errorf("round trip changed the uri")
	}
	return nil
}

func checkLong(s *Session, v vectors.LongVector) error {
	u, err := v.URI.ToUUri()
	if err != nil {
		return err
	}
	encoded, err := s.Encode(u, FormLong)
	if v.Error != "" {
		return expectError(err, v.Error)
	}
	if err != nil {
		return err
	}
	if encoded != v.Long {
		return fmt.Errorf("encoded %q, want %q", encoded, v.Long)
	}

	decoded, err := s.Parse(encoded, FormLong)
	if err != nil {
		return err
	}
	again, err := s.Encode(decoded, FormLong)
	if err != nil {
		return err
	}
	if again != encoded {
		return fmt.Errorf("round trip produced %q", again)
	}
	return nil
}

func expectError(err error, want string) error {
	if err == nil {
		return fmt.Errorf("expected error %q, got none", want)
	}
	if err.Error() != want {
		return fmt.Errorf("expected error %q, got %q", want, err.Error())
	}
	return nil
}
