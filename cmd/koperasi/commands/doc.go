// Package commands defines the koperasi CLI over the calculation engine.
//
// Commands
//
//   - format    Format a Rupiah amount for display
//   - words     Spell an amount in Indonesian words (terbilang)
//   - interest  Compute a compound savings interest schedule
//   - loan      Compute a fixed-payment loan schedule
//   - shu       Distribute an SHU pool from a JSON scheme file
//   - savings   Compute tier-based mandatory monthly savings
//
// Every command is a pure calculation over its arguments; nothing here
// touches the network or the history database.
package commands
