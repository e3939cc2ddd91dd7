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

// Package nvram keeps the contents of a flash device on disk between
// sessions. By default files are stored in the nvram directory of the resource
// path and are named after the flash chip.
package nvram

import (
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/gopherflash/curated"
	"github.com/jetsetilly/gopherflash/environment"
	"github.com/jetsetilly/gopherflash/hardware/flash"
	"github.com/jetsetilly/gopherflash/logger"
	"github.com/jetsetilly/gopherflash/resources"
)

const nvramPath = "nvram"

// the tag used for log entries
const logTag = "nvram"

// Sentinal errors.
const (
	ReadError  = "nvram: read: %v"
	WriteError = "nvram: write: %v"
)

// NVRAM connects a flash device to a file.
type NVRAM struct {
	env *environment.Environment
	dev *flash.Device
	fn  string
}

// NewNVRAM is the preferred method of initialisation for the NVRAM type. The
// file is in the resource path and is named after the device's chip.
func NewNVRAM(env *environment.Environment, dev *flash.Device) (*NVRAM, error) {
	fn, err := resources.JoinPath(nvramPath, dev.Descriptor().Name+".nv")
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	return NewNVRAMFile(env, dev, fn), nil
}

// NewNVRAMFile is like NewNVRAM() except that the filename is specified.
func NewNVRAMFile(env *environment.Environment, dev *flash.Device, fn string) *NVRAM {
	return &NVRAM{
		env: env,
		dev: dev,
		fn:  fn,
	}
}

// Filename returns the name of the file used to store the flash contents.
func (nv *NVRAM) Filename() string {
	return nv.fn
}

// Read flash contents from disk. A missing file is not an error. The device
// contents are left unchanged and will be written to disk by the next call to
// Write().
func (nv *NVRAM) Read() error {
	f, err := os.Open(nv.fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Logf(nv.env, logTag, "no nvram file for %s", nv.dev.Descriptor().Name)
			return nil
		}
		logger.Logf(nv.env, logTag, "could not load nvram file: %v", err)
		return curated.Errorf(ReadError, err)
	}
	defer f.Close()

	err = nv.dev.Load(f)
	if err != nil {
		logger.Logf(nv.env, logTag, "could not load nvram file: %v", err)
		return curated.Errorf(ReadError, err)
	}

	logger.Logf(nv.env, logTag, "nvram file loaded from %s", nv.fn)
	return nil
}

// Write flash contents to disk. The file is only written if the contents have
// changed since the most recent Read() or Write().
func (nv *NVRAM) Write() error {
	if nv.dev.IsSaved() {
		if _, err := os.Stat(nv.fn); err == nil {
			return nil
		}
	}

	f, err := os.Create(nv.fn)
	if err != nil {
		logger.Logf(nv.env, logTag, "could not write nvram file: %v", err)
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			logger.Logf(nv.env, logTag, "could not close nvram file: %v", err)
		}
	}()

	err = nv.dev.Save(f)
	if err != nil {
		logger.Logf(nv.env, logTag, "could not write nvram file: %v", err)
		return curated.Errorf(WriteError, err)
	}

	logger.Logf(nv.env, logTag, "nvram file saved to %s", nv.fn)
	return nil
}
