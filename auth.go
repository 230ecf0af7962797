package main

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/xo/dburl"
	"golang.org/x/crypto/ssh/terminal"
)

// initializeCredentialsIfMissing completes the user info of a database
// url, asking on the terminal for whatever the url itself does not
// carry. The DSN is re-derived afterwards so the driver sees the
// credentials.
func initializeCredentialsIfMissing(dbUrl *dburl.URL) {
	if hasCredentials(dbUrl) {
		return
	}
	if !askForMissing(dbUrl) {
		logrus.Warn("No authorization info - insert may fail")
		return
	}
	d, err := dburl.Parse(dbUrl.String())
	if err != nil {
		logrus.Error(err)
		return
	}
	dbUrl.DSN = d.DSN
}

func hasCredentials(dbUrl *dburl.URL) bool {
	if dbUrl.User == nil {
		return false
	}
	_, passwordSet := dbUrl.User.Password()
	return dbUrl.User.Username() != "" && passwordSet
}

func askForMissing(dbUrl *dburl.URL) bool {
	// Never prompt when stdin carries the CSV stream.
	if !terminal.IsTerminal(int(syscall.Stdin)) {
		return false
	}
	reader := bufio.NewReader(os.Stdin)

	userName := ""
	if dbUrl.User != nil {
		userName = dbUrl.User.Username()
	}
	if userName == "" {
		fmt.Print("Login: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			logrus.Error("Failed to read username: ", err)
			return false
		}
		userName = strings.TrimSpace(line)
	}

	password := ""
	passwordSet := false
	if dbUrl.User != nil {
		password, passwordSet = dbUrl.User.Password()
	}
	if !passwordSet {
		fmt.Print("Password: ")
		p, err := terminal.ReadPassword(int(syscall.Stdin))
		if err != nil {
			logrus.Error("Failed to read password: ", err)
			return false
		}
		fmt.Println()
		password = string(p)
	}
	dbUrl.User = url.UserPassword(userName, password)
	return true
}
