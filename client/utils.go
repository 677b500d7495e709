package client

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// SubscribeToFileInput tails the file line by line, emitting each complete
// action line on the returned channel. Reading never stops on EOF so stdin
// and growing files both work.
func SubscribeToFileInput(file *os.File) (<-chan string, <-chan error) {
	lines := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		for {
			line, err := readLineFromFile(file)
			if err != nil {
				errChan <- err
				return
			}
			lines <- strings.Join(line, " ")
		}
	}()

	return lines, errChan
}

func readLineFromFile(file *os.File) ([]string, error) {
	var line []string
	for {
		var oneWord string
		n, err := fmt.Fscan(file, &oneWord)
		if err != nil && err != io.EOF {
			return nil, err
		}

		if n != 0 {
			line = append(line, oneWord)
			// Item ends with }
			if strings.Contains(oneWord, "}") {
				return line, nil
			}
		} else {
			time.Sleep(time.Second)
		}
	}
}

func setInterval(function func(), intervalSec time.Duration) *time.Ticker {
	ticker := time.NewTicker(intervalSec * time.Second)
	go func() {
		for {
			<-ticker.C
			function()
		}
	}()
	return ticker
}
