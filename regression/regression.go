// This file is part of Gopherflash.
//
// Gopherflash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherflash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherflash.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/database"
	"github.com/jetsetilly/gopherflash/resources"
)

// Sentinal errors.
const (
	RegressionError  = "regression: %v"
	RegressionFailed = "regression: %d of %d tests failed"
)

const (
	regressionPath    = "regression"
	regressionDBFile  = "db"
	regressionScripts = "scripts"
)

// location returns the path of the regression database and the directory
// that scripts are copied into
var location = func() (string, string, error) {
	db, err := resources.JoinPath(regressionPath, regressionDBFile)
	if err != nil {
		return "", "", err
	}
	scripts, err := resources.JoinPath(regressionPath, regressionScripts)
	if err != nil {
		return "", "", err
	}
	return db, scripts, nil
}

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test. if newRegression is true then the result
	// of the regression is recorded rather than compared. the message is
	// printed while the regression is running
	//
	// returns false if the regression failed along with a detail message
	regress(newRegression bool, output io.Writer, message string) (bool, string, error)
}

// register the entry types that can be found in the regression database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(scriptEntryID, deserialiseScriptEntry)
}

func startSession(activity database.Activity) (*database.Session, error) {
	dbFile, _, err := location()
	if err != nil {
		return nil, curated.Errorf(RegressionError, err)
	}
	return database.StartSession(dbFile, activity, initDBSession)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regression and adds it to the database.
func RegressAdd(output io.Writer, reg Regressor) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	ok, detail, err := reg.regress(true, output, fmt.Sprintf("adding: %s", reg))
	if err != nil || !ok {
		_ = db.EndSession(false)
		if err != nil {
			return curated.Errorf(RegressionError, err)
		}
		return curated.Errorf(RegressionError, detail)
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = reg.CleanUp()
		_ = db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "\radded: %03d %s\n", key, reg)
	return nil
}

// RegressDelete removes an entry from the regression database. The user is
// asked for confirmation through the confirmation io.Reader unless it is nil.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", key))
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	reg, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if confirmation != nil {
		fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)
		confirm, _ := bufio.NewReader(confirmation).ReadString('\n')
		if len(confirm) == 0 || (confirm[0] != 'y' && confirm[0] != 'Y') {
			return db.EndSession(false)
		}
	}

	if err := db.Delete(v); err != nil {
		_ = db.EndSession(false)
		return curated.Errorf(RegressionError, err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf(RegressionError, err)
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)
	return nil
}

// RegressRun runs the regression tests in the database. If the list of keys
// is empty then every test is run. Returns a RegressionFailed error if any
// test fails.
func RegressRun(output io.Writer, verbose bool, keys []string) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	filter := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(RegressionError, fmt.Sprintf("invalid key (%s)", k))
		}
		filter = append(filter, v)
	}

	var numSucceed, numFail, numError int

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf(RegressionError, "database entry is not a regression test")
		}

		ok, detail, err := reg.regress(false, output, fmt.Sprintf("running: %03d %s", key, reg))
		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "\r  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %v\n", err)
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "\rfailure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %s\n", detail)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "\rsucceed: %03d %s\n", key, reg)
		}

		return true, nil
	}

	if _, err := db.SelectKeys(onSelect, filter...); err != nil {
		return err
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [%d with errors]", numError)
	}
	fmt.Fprintln(output)

	if numFail+numError > 0 {
		return curated.Errorf(RegressionFailed, numFail+numError, numSucceed+numFail+numError)
	}
	return nil
}
