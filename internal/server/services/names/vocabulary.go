package names

// vocabulary is the de-duplicated word list names are drawn from.
var vocabulary = []string{
	"Falcon", "Phoenix", "Dragon", "Kraken", "Serpent", "Panther", "Wolf", "Eagle", "Cobra", "Raven",
	"Scorpion", "Mantis", "Leopard", "Jaguar", "Viper", "Hawk", "Owl", "Lion", "Tiger", "Lynx",
	"Caracal", "Mongoose", "Piranha", "Octopus", "Basilisk", "Chimera", "Manticore", "Storm",
	"Thunder", "Shadow", "Lightning", "Frost", "Flame", "Inferno", "Cyclone", "Avalanche", "Tsunami",
	"Volcano", "Hurricane", "Tempest", "Blizzard", "Tornado", "Earthquake", "Glacier", "Mountain",
	"Ocean", "Desert", "Forest", "River", "Canyon", "Cascade", "Meteor", "Comet", "Blade", "Shield",
	"Scepter", "Crown", "Hammer", "Sentinel", "Beacon", "Oracle", "Prism", "Dagger", "Sword",
	"Katana", "Scimitar", "Rapier", "Crossbow", "Arrow", "Spear", "Lance", "Gauntlet", "Armor",
	"Helm", "Cloak", "Ring", "Amulet", "Talisman", "Crystal", "Mirror", "Phantom", "Ghost", "Specter",
	"Enigma", "Wraith", "Mirage", "Paradox", "Echo", "Cipher", "Illusion", "Vision", "Dream",
	"Nightmare", "Destiny", "Fate", "Fortune", "Glory", "Honor", "Victory", "Legend", "Myth",
	"Mystery", "Secret", "Riddle", "Eternity", "Infinity", "Matrix", "Vector", "Nexus", "Quantum",
	"Protocol", "Algorithm", "Binary", "Cortex", "Pixel", "Data", "Code", "Network", "Signal",
	"Frequency", "Wavelength", "Resonance", "Pulse", "Circuit", "Node", "Core", "Interface", "System",
	"Module", "Array", "Sequence", "Function", "Atlas", "Titan", "Hydra", "Medusa", "Griffin",
	"Sphinx", "Zeus", "Thor", "Odin", "Loki", "Ares", "Apollo", "Artemis", "Athena", "Hermes",
	"Hades", "Valkyrie", "Pegasus", "Unicorn", "Leviathan", "Banshee", "Siren", "Nova", "Pulsar",
	"Nebula", "Quasar", "Stellar", "Cosmos", "Zenith", "Aurora", "Helios", "Galaxy", "Star",
	"Asteroid", "Planet", "Moon", "Orbit", "Eclipse", "Solar", "Lunar", "Cosmic", "Celestial",
	"Astral", "Supernova", "Constellation", "Void", "Chronos", "Temporal", "Vortex", "Portal",
	"Gateway", "Dimension", "Parallel", "Crossing", "Timekeeper", "Warp", "Flux", "Stream", "Current",
	"Flow", "Passage", "Bridge", "Door", "Nano", "Cyber", "Tech", "Mech", "Synth", "Bio", "Cryo",
	"Pyro", "Electro", "Sonic", "Plasma", "Laser", "Fusion", "Fission", "Ion", "Particle", "Wave",
	"Field", "Barrier", "Generator", "Reactor", "Engine", "Drive", "Processor", "Whisper", "Silence",
	"Shade", "Scout", "Spy", "Agent", "Operative", "Infiltrator", "Ranger", "Hunter", "Tracker",
	"Seeker", "Finder", "Watcher", "Guardian", "Glacial", "Quake", "Tremor", "Shock", "Surge",
	"Blast", "Strike", "Diamond", "Platinum", "Titanium", "Carbon", "Steel", "Iron", "Gold", "Silver",
	"Obsidian", "Adamant", "Mithril", "Mercury", "Chrome", "Neon",
}
