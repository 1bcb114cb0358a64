package splitter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmcarter9t/filesplitter/internal/config"
	"github.com/jmcarter9t/filesplitter/internal/diag"
)

// Splitter is the coordinator: it establishes the shared, read-only facts
// every worker needs (file size, header bytes, key indices, block size) and
// then hands each worker an independent slice with no further interaction
// between them.
type Splitter struct {
	cfg    config.Config
	logger *diag.Logger
}

// New builds a Splitter from a fully-resolved Config.
func New(cfg config.Config, logger *diag.Logger) *Splitter {
	return &Splitter{cfg: cfg, logger: logger}
}

// Run partitions the configured input file into per-key output files under
// the configured output directory. It returns a ConfigError-class error for
// problems discovered before any worker is spawned (missing/empty input,
// unwritable output directory); per-worker failures are logged and do not
// fail the whole run, matching the tool's fail-independently design.
func (s *Splitter) Run() error {
	tid := diag.CoordinatorTID

	fi, err := os.Stat(s.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("stat input %s: %w", s.cfg.InputPath, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("input %s is not a regular file", s.cfg.InputPath)
	}
	fileSize := fi.Size()
	if fileSize <= 0 {
		return fmt.Errorf("input file %s is empty", s.cfg.InputPath)
	}
	s.logger.Infof(tid, "input file %s is %d bytes", s.cfg.InputPath, fileSize)

	var header []byte
	if s.cfg.HeaderMode {
		header, err = readHeaderLine(s.cfg.InputPath)
		if err != nil {
			return fmt.Errorf("read header: %w", err)
		}
		s.logger.Infof(tid, "captured %d byte header", len(header))
	}
	headerLen := int64(len(header))

	if err := os.MkdirAll(s.cfg.OutputDir, 0o775); err != nil {
		return fmt.Errorf("create output dir %s: %w", s.cfg.OutputDir, err)
	}

	threads := config.ClampThreads(s.cfg.Threads)
	keyIndices := s.cfg.KeyIndices
	if len(keyIndices) == 0 {
		keyIndices = []int{1}
	}

	body := fileSize - headerLen
	if body <= 0 {
		s.logger.Warningf(tid, "no records beyond the header, nothing to split")
		return nil
	}
	blockSize := ceilDiv(body, int64(threads))
	s.logger.Infof(tid, "splitting with %d workers, block size %d bytes", threads, blockSize)

	var manifestCh chan manifestEntry
	var manifestDone chan struct{}
	var entries []manifestEntry
	if s.cfg.Manifest {
		manifestCh = make(chan manifestEntry, 64)
		manifestDone = make(chan struct{})
		go func() {
			for e := range manifestCh {
				entries = append(entries, e)
			}
			close(manifestDone)
		}()
	}

	var wg sync.WaitGroup
	id := 0
	for b := headerLen; b < fileSize; b += blockSize {
		wg.Add(1)
		go func(workerID int, begin, end int64) {
			defer wg.Done()
			h := &BlockHandler{
				id:         workerID,
				inputPath:  s.cfg.InputPath,
				outputDir:  s.cfg.OutputDir,
				header:     header,
				keyIndices: keyIndices,
				logger:     s.logger,
				fileSize:   fileSize,
				headerLen:  headerLen,
				manifest:   manifestCh,
			}
			h.Run(begin, end)
		}(id, b, b+blockSize)
		id++
	}
	wg.Wait()

	if s.cfg.Manifest {
		close(manifestCh)
		<-manifestDone
		manifestPath := filepath.Join(s.cfg.OutputDir, manifestFileName)
		if err := writeManifest(manifestPath, entries); err != nil {
			s.logger.Warningf(tid, "manifest write failed: %v", err)
		} else {
			s.logger.Infof(tid, "wrote manifest with %d entries to %s", len(entries), manifestPath)
		}
	}

	s.logger.Infof(tid, "split complete")
	return nil
}

// readHeaderLine reads the first record of path verbatim, terminator
// included, to use as the header prefix for every output file. A file with
// no record delimiter at all is treated as one header with no body: ReadBytes
// still returns whatever it read before hitting EOF, so only errors other
// than EOF are fatal here.
func readHeaderLine(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadBytes(recordDelim)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read header line: %w", err)
	}
	return line, nil
}

func ceilDiv(a, b int64) int64 {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
