// Package wordlist reads word-list files into a model.Vocabulary.
//
// A word list is a UTF-8 text file with one word per line. Every line is
// kept verbatim, blank lines included. Lines from all files are combined,
// sorted and de-duplicated.
//
// Failure modes:
//   - A file that cannot be opened or read aborts the load with a
//     *FileAccessError.
//   - A line that is not valid UTF-8 is reported as a *LineDecodeError
//     through the logger and skipped; the rest of the file is still read.
package wordlist
