package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
   ____  ___ _______      __
  / ___|/ _ \_   _\ \    / /
 | |  _| | | || |  \ \/\/ /
 | |_| | |_| || |   \_/\_/
  \____|\___/ |_|
`
