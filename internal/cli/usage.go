// internal/cli/usage.go
package cli

import "fmt"

const usageText = `gopixz: Parallel Indexing XZ compression, fully compatible with XZ

Basic usage:
  gopixz input output.pxz           # Compress a file in parallel
  gopixz -d input.pxz output        # Decompress

Tarballs:
  gopixz input.tar output.tpxz      # Compress a tarball
  gopixz -d input.tpxz output.tar   # Decompress
  gopixz -l input.tpxz              # List tarball contents
  gopixz -x path/to/file < input.tpxz | tar x  # Extract one file
  tar -Igopixz -cf output.tpxz dir  # Make tar use gopixz automatically

Input and output:
  gopixz < input > output.pxz       # Same as 'gopixz input output.pxz'
  gopixz -i input -o output.pxz     # Ditto
  gopixz [-d] input                 # Automatically choose output filename
  gopixz [-d] -o output input       # Explicit output; input is kept

Basic options:
  -z, --compress            force compression
  -d, --decompress          force decompression
  -c, --stdout              accepted for xz compatibility; has no effect
  -i, --input=file          specify input file
  -o, --output=file         specify output file
  -t, --no-tar              don't assume input is in tar format
  -k, --keep                keep (don't delete) input files
  -h, --help                display this short help and exit
  -p, --processes=NUM       use at most NUM threads; the default is 0; set to 0
                            to use as many threads as there are processor cores
  -T, --threads=NUM         same as -p (compatibility with xz)
  -f, --block-fraction=NUM  size blocks as NUM times the dictionary size;
                            the default is 2
  -q, --qsize=NUM           queue at most NUM blocks between pipeline stages;
                            the default is 2
  -0, -1, ..., -9           set compression level, from fastest to strongest
  -0, --fast                fastest compression level
  -9, --best                best/strongest compression level
  -e, --extreme             try to improve compression ratio by using more CPU time;
                            does not affect decompressor memory requirements
      --progress            show a progress bar on standard error
      --version             print version information and exit

Tarball specific options:
  -l, --list                list files
  -x, --extract             extract files

gopixz %s
`

// Usage returns the full help text
func Usage(version string) string {
	return fmt.Sprintf(usageText, version)
}
