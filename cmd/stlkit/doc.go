// Command stlkit inspects EBU STL subtitle files and converts SRT
// files into them.
package main
