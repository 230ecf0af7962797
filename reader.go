package main

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/machinebox/progress"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

const STDIN_FILE_NAME = "--"

// createReader opens a fixture CSV for reading. Use -- as the file
// name to read from stdin. Returns the reader, a closer, the input
// size (0 when unknown) and a progress function counting bytes read.
func createReader(fileName, encoding, delimiter string) (*csv.Reader, io.Closer, int64, func() int64, error) {
	if len([]rune(delimiter)) != 1 {
		return nil, nil, 0, return0, errors.Errorf("CSV delimiter should be a single char: %q", delimiter)
	}

	var reader *os.File
	var err error
	size := int64(0)
	if fileName == STDIN_FILE_NAME {
		reader = os.Stdin
	} else {
		reader, err = os.Open(fileName)
		if err != nil {
			return nil, nil, 0, return0, errors.Wrapf(err, "can not open CSV file %s", fileName)
		}
		info, err := reader.Stat()
		if err != nil {
			log.Warnf("Can not get file stat %s: %v", fileName, err)
		} else {
			size = info.Size()
		}
	}

	var encodedReader io.Reader
	if encoding == "UTF-8" {
		encodedReader = reader
	} else {
		encodedReader, err = charset.NewReader(reader, encoding)
		if err != nil {
			reader.Close()
			return nil, nil, 0, return0, errors.Wrapf(err, "can not decode file from charset %s", encoding)
		}
	}
	progressReader := progress.NewReader(encodedReader)
	fileReader := bufio.NewReader(progressReader)
	csvReader := csv.NewReader(fileReader)
	csvReader.Comma = ([]rune(delimiter))[0]
	return csvReader, reader, size, progressReader.N, nil
}

func return0() int64 {
	return int64(0)
}
