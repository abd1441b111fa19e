package screens

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/apiclient"
)

const maxUploadSize = 10 << 20

var spreadsheetTypes = []string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-excel",
	"text/csv",
}

// errUpload is a problem with the posted file that the user can fix.
type errUpload string

func (e errUpload) Error() string { return string(e) }

// spreadsheet returns the spreadsheet posted in field. The caller closes the
// returned file.
func spreadsheet(w http.ResponseWriter, r *http.Request, field string) (apiclient.Upload, multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apiclient.Upload{}, nil, errUpload("The file must be smaller than " + humanize.IBytes(maxUploadSize))
		}

		return apiclient.Upload{}, nil, errUpload("Excel file is required")
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return apiclient.Upload{}, nil, errUpload("Excel file is required")
	}
	if header.Size > maxUploadSize {
		_ = file.Close()

		return apiclient.Upload{}, nil, errUpload("The file must be smaller than " + humanize.IBytes(maxUploadSize))
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		_ = file.Close()

		return apiclient.Upload{}, nil, errors.Wrap(err, "mimetype.DetectReader()")
	}
	if !mimetype.EqualsAny(mtype.String(), spreadsheetTypes...) {
		_ = file.Close()

		return apiclient.Upload{}, nil, errUpload("Only Excel or CSV files are accepted, got " + mtype.String())
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		_ = file.Close()

		return apiclient.Upload{}, nil, errors.Wrap(err, "multipart.File.Seek()")
	}

	return apiclient.Upload{Field: field, Filename: header.Filename, Content: file}, file, nil
}
